package linkedin

// Selector chains for each field, most specific layout first.
var (
	nameChain = rules(ValidName,
		"h1.text-heading-xlarge",
		"h1[data-anonymize='person-name']",
		".pv-text-details__left-panel h1",
		"h1.top-card-layout__title",
		"[data-test-id='name']",
		"main h1",
		"h1",
	)

	headlineChain = rules(ValidHeadline,
		".text-body-medium.break-words",
		".pv-text-details__left-panel .text-body-medium",
		".top-card-layout__headline",
		"[data-test-id='headline']",
		"h2.text-body-medium",
		"h2",
	)

	locationChain = rules(ValidLocation,
		".text-body-small.inline.t-black--light.break-words",
		".pv-text-details__left-panel .text-body-small",
		".top-card-layout__first-subline .top-card__subline-item",
		".top-card-layout__first-subline",
		"[data-test-id='location']",
		".pv-top-card--list-bullet li",
	)

	titleChain = rules(ValidTitle,
		".mr1.t-bold span[aria-hidden='true']",
		".t-bold span[aria-hidden='true']",
		"h3",
		".t-16.t-black.t-bold",
		"[class*='title']",
		"[class*='position']",
		".t-bold",
	)

	companyChain = rules(ValidCompany,
		".t-14.t-normal:not(.t-black--light) span[aria-hidden='true']",
		".pvs-entity__subtitle",
		"[class*='company']",
		"[class*='organization']",
		".pvs-entity__secondary-title",
		"h4",
		".t-14.t-normal:not(.t-black--light)",
	)

	dateChain = rules(ValidDateRange,
		".pvs-entity__caption-wrapper",
		".t-14.t-normal.t-black--light span[aria-hidden='true']",
		".t-black--light span[aria-hidden='true']",
		"[class*='date']",
		"[class*='duration']",
		"time",
		".t-black--light",
	)

	descriptionChain = rules(ValidDescription,
		".inline-show-more-text",
		"[class*='description']",
		".pvs-list__outer-container .t-14.t-normal.t-black",
		"p",
	)

	schoolChain = rules(ValidSchool,
		".mr1.t-bold span[aria-hidden='true']",
		".t-bold span[aria-hidden='true']",
		"h3",
		".pv-entity__school-name",
		"[class*='school']",
		".t-bold",
	)

	degreeChain = rules(ValidDegree,
		".pv-entity__degree-name .pv-entity__comma-item",
		".t-14.t-normal:not(.t-black--light) span[aria-hidden='true']",
		"[class*='degree']",
		"h4",
		".t-14.t-normal:not(.t-black--light)",
	)

	fieldChain = rules(ValidField,
		".pv-entity__fos .pv-entity__comma-item",
		"[class*='field-of-study']",
		"[class*='fos']",
	)

	skillChain = append(rules(ValidSkill,
		".mr1.t-bold span[aria-hidden='true']",
		".t-bold span[aria-hidden='true']",
		".pv-skill-category-entity__name-text",
		"[class*='skill-name']",
	), Rule{Validate: ValidSkill})
)

// itemSelector matches candidate entity elements inside a section.
const itemSelector = "li, .pvs-list__paged-list-item, [data-view-name='profile-component-entity'], article, [role='listitem']"
