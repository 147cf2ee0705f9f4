package linkedin

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func mustDoc(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

const profilePage = `<html><head><title>Jane Doe | LinkedIn</title><script>var x = "Join LinkedIn";</script></head>
<body>
<nav><div>Home</div><div>My Network</div><div>Jobs</div></nav>
<main>
  <section class="artdeco-card pv-top-card">
    <h1 class="text-heading-xlarge">Jane Doe</h1>
    <div class="text-body-medium break-words">Senior Engineer at Acme Corp</div>
    <span class="text-body-small inline t-black--light break-words">San Francisco Bay Area</span>
    <span class="t-bold">500+ connections</span>
  </section>
  <section class="artdeco-card"><div id="about"></div>
    <h2>About</h2>
    <ul><li><h3>Ghost Title</h3><span>Ghost Co · Full-time</span></li></ul>
  </section>
  <section class="artdeco-card"><div id="volunteering_experience"></div>
    <h2>Volunteer Experience</h2>
    <ul><li><h3>Mentor</h3><span>Code Club · Part-time</span></li></ul>
  </section>
  <section class="artdeco-card"><div id="experience"></div>
    <div class="pvh-header"><h2><span aria-hidden="true">Experience</span><span class="visually-hidden">Experience</span></h2></div>
    <ul>
      <li>
        <div data-view-name="profile-component-entity">
          <h3>Senior Engineer</h3>
          <span>Acme Corp · Full-time</span>
          <span class="date-range">Jan 2020 - Present · 4 yrs 6 mos</span>
          <div class="inline-show-more-text">Led the payments platform migration to Go.</div>
        </div>
      </li>
      <li>
        <div data-view-name="profile-component-entity">
          <h3>Software Engineer</h3>
          <h4>Globex (Remote)</h4>
          <span class="date-range">Mar 2016 - Dec 2019</span>
        </div>
      </li>
    </ul>
  </section>
  <section class="artdeco-card"><div id="education"></div>
    <h2>Education</h2>
    <ul><li><h3>MIT</h3><h4>Bachelor of Science - BS, Computer Science</h4><span class="date-range">2012 - 2016</span></li></ul>
  </section>
  <section class="artdeco-card"><div id="skills"></div>
    <h2>Skills</h2>
    <ul><li>Go</li><li>PostgreSQL</li><li>go</li><li>Show all 25 skills</li></ul>
  </section>
</main>
<footer><a>User Agreement</a><a>Accessibility</a></footer>
</body></html>`
