package enrich

// Prompt templates, data only.

const enrichSystem = `You extract structured candidate data from LinkedIn profile captures. You answer with a single JSON object and nothing else.`

// enrichPrompt args: allowed field keys, partial record JSON, profile content.
const enrichPrompt = `Below is a captured LinkedIn profile and the fields an automatic parser already extracted from it.

Fill in fields the parser missed, using ONLY what the profile content states. Do not guess.
If an extracted value is clearly wrong (for example a misread company name or a navigation label read as a name), report it in "corrections" instead of repeating it in "fields".

Allowed field keys:
%s

Rules:
- Omit any field you cannot determine. Never output empty strings or nulls.
- companies, universities, fieldsOfStudy are JSON arrays of strings, most recent first.
- Dates look like "Jan 2020"; use "Present" for a current role's end date.
- Tenure years/months and counts are integers written as strings.
- Never output or correct linkedinUrl.

Return a JSON object with this exact structure:
{
  "fields": {"<key>": "<value or array>"},
  "corrections": [
    {"field": "<key>", "originalValue": "<extracted value>", "correctedValue": "<fixed value>", "reason": "<short reason>"}
  ]
}

EXTRACTED FIELDS:
%s

PROFILE CONTENT:
%s`
