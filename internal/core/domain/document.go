package domain

// Document is a schemaless stored record. Store implementations normalise
// driver types before handing documents out: arrays are []any, nested
// documents are Document and dates are time.Time.
type Document map[string]any

// String returns the string stored under key, or def when the key is absent
// or holds something else.
func (d Document) String(key, def string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return def
}

// OptionalString is String for nullable fields.
func (d Document) OptionalString(key string, def *string) *string {
	if v, ok := d[key].(string); ok {
		return &v
	}
	return def
}

// Strings returns the string elements of the array under key. Missing keys
// give an empty, non-nil slice.
func (d Document) Strings(key string) []string {
	out := []string{}
	items, ok := d[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// --- Document → content types ---

// HomepageFromDocument has no defaults to fall back on: missing fields
// decode as empty strings.
func HomepageFromDocument(d Document) HomepageContent {
	return HomepageContent{
		HeroHeading:    d.String("hero_heading", ""),
		HeroSubheading: d.String("hero_subheading", ""),
		PrimaryCTA:     d.String("primary_cta", ""),
		SecondaryCTA:   d.String("secondary_cta", ""),
	}
}

func ServiceFromDocument(d Document) Service {
	return Service{
		Key:          d.String("key", ""),
		Title:        d.String("title", ""),
		Subtitle:     d.OptionalString("subtitle", nil),
		Description:  d.String("description", ""),
		Deliverables: d.Strings("deliverables"),
		Benefits:     d.Strings("benefits"),
	}
}

func CaseStudyFromDocument(d Document) CaseStudy {
	return CaseStudy{
		Title:    d.String("title", ""),
		Industry: d.String("industry", ""),
		Summary:  d.String("summary", ""),
		Metrics:  d.Strings("metrics"),
	}
}

func TestimonialFromDocument(d Document) Testimonial {
	return Testimonial{
		Name:  d.String("name", ""),
		Role:  d.OptionalString("role", nil),
		Quote: d.String("quote", ""),
	}
}

// OrganizationProfileFromDocument fills every absent field from
// DefaultOrganizationProfile.
func OrganizationProfileFromDocument(d Document) OrganizationProfile {
	def := DefaultOrganizationProfile()
	return OrganizationProfile{
		Name:    d.String("name", def.Name),
		Tagline: d.String("tagline", def.Tagline),
		Email:   d.OptionalString("email", def.Email),
		Phone:   d.OptionalString("phone", def.Phone),
		Address: d.OptionalString("address", def.Address),
		Website: d.OptionalString("website", def.Website),
	}
}
