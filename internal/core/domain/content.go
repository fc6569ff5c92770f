package domain

import "time"

// Collection names. One collection per content type, named after the
// lowercased type.
const (
	CollectionHomepage            = "homepagecontent"
	CollectionService             = "service"
	CollectionCaseStudy           = "casestudy"
	CollectionTestimonial         = "testimonial"
	CollectionBlogPost            = "blogpost"
	CollectionContactSubmission   = "contactsubmission"
	CollectionOrganizationProfile = "organizationprofile"
)

// DefaultContactSource is stamped on contact submissions that do not name one.
const DefaultContactSource = "website"

// HomepageContent is the hero copy shown on the landing page.
type HomepageContent struct {
	HeroHeading    string `json:"hero_heading"    bson:"hero_heading"`
	HeroSubheading string `json:"hero_subheading" bson:"hero_subheading"`
	PrimaryCTA     string `json:"primary_cta"     bson:"primary_cta"`
	SecondaryCTA   string `json:"secondary_cta"   bson:"secondary_cta"`
}

// Service is one of the offered service packages. Key is conventionally
// "wps", "bas" or "sps" but nothing enforces it.
type Service struct {
	Key          string   `json:"key"          bson:"key"`
	Title        string   `json:"title"        bson:"title"`
	Subtitle     *string  `json:"subtitle"     bson:"subtitle"`
	Description  string   `json:"description"  bson:"description"`
	Deliverables []string `json:"deliverables" bson:"deliverables"`
	Benefits     []string `json:"benefits"     bson:"benefits"`
}

// CaseStudy is a short customer success story.
type CaseStudy struct {
	Title    string   `json:"title"    bson:"title"`
	Industry string   `json:"industry" bson:"industry"`
	Summary  string   `json:"summary"  bson:"summary"`
	Metrics  []string `json:"metrics"  bson:"metrics"`
}

type Testimonial struct {
	Name  string  `json:"name"  bson:"name"`
	Role  *string `json:"role"  bson:"role"`
	Quote string  `json:"quote" bson:"quote"`
}

type BlogPost struct {
	Title     string `json:"title"     bson:"title"`
	Slug      string `json:"slug"      bson:"slug"`
	Excerpt   string `json:"excerpt"   bson:"excerpt"`
	Content   string `json:"content"   bson:"content"`
	Published bool   `json:"published" bson:"published"`
}

// ContactSubmission is a message left through the public contact form.
// CreatedAt is always assigned by the server.
type ContactSubmission struct {
	Name      string    `json:"name"       bson:"name"`
	Email     string    `json:"email"      bson:"email"`
	Phone     *string   `json:"phone"      bson:"phone"`
	Message   string    `json:"message"    bson:"message"`
	Source    *string   `json:"source"     bson:"source"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// OrganizationProfile feeds the site footer and structured data. Every field
// has a default, so a profile is always fully populated.
type OrganizationProfile struct {
	Name    string  `json:"name"    bson:"name"`
	Tagline string  `json:"tagline" bson:"tagline"`
	Email   *string `json:"email"   bson:"email"`
	Phone   *string `json:"phone"   bson:"phone"`
	Address *string `json:"address" bson:"address"`
	Website *string `json:"website" bson:"website"`
}

// DashboardCounts holds the number of stored documents per admin-visible
// collection.
type DashboardCounts struct {
	Services    int `json:"services"`
	CaseStudies int `json:"case_studies"`
	BlogPosts   int `json:"blog_posts"`
	Contacts    int `json:"contacts"`
}
