package domain

// Fallback content served while the store holds nothing for a type. Each
// call returns a fresh value so callers may modify it freely.

func strPtr(s string) *string { return &s }

func DefaultHomepage() HomepageContent {
	return HomepageContent{
		HeroHeading:    "Modern Websites, Smart Automation & Secure Digital Solutions.",
		HeroSubheading: "We help businesses go digital with clean websites, automated workflows, and secure online systems.",
		PrimaryCTA:     "Book Free Consultation",
		SecondaryCTA:   "View Services",
	}
}

func DefaultServices() []Service {
	return []Service{
		{
			Key:         "wps",
			Title:       "Website Presence System (WPS)",
			Description: "Launch a clean, fast, mobile-first website with the essentials baked in.",
			Deliverables: []string{
				"Home / About / Services / Contact",
				"Mobile-first design",
				"Booking & WhatsApp CTAs",
				"Google Maps + contact form",
				"Google Business Profile setup",
				"Basic SEO + analytics",
				"Fast hosting + CDN",
			},
			Benefits: []string{
				"Clear online presence",
				"Faster discovery",
				"Higher trust",
				"Performance-focused",
			},
		},
		{
			Key:         "bas",
			Title:       "Business Automation System (BAS)",
			Description: "Automate lead capture, routing, scheduling, payments and reporting.",
			Deliverables: []string{
				"Zapier/Make integrations",
				"CRM setup (HubSpot/Zoho/Airtable)",
				"Appointment workflows",
				"Payment notifications",
				"Email nurture sequences",
				"Review & feedback automation",
				"Dashboard reporting",
			},
			Benefits: []string{
				"Save hours weekly",
				"Less manual work",
				"More consistent follow-ups",
			},
		},
		{
			Key:         "sps",
			Title:       "Security Protection System (SPS)",
			Subtitle:    strPtr("Includes Digital Forensics"),
			Description: "Security-first execution across your stack with ongoing protection.",
			Deliverables: []string{
				"HTTPS/SSL",
				"Cloudflare WAF + DDoS",
				"Malware removal & hardening",
				"Backups (daily/weekly)",
				"VAPT-lite scans",
				"Email spoofing protection",
				"Incident recovery support",
				"Uptime & vulnerability monitoring",
				"Digital Forensics (log review, compromise analysis, threat tracing)",
			},
			Benefits: []string{
				"Reduced risk",
				"Faster recovery",
				"Stronger trust",
			},
		},
	}
}

func DefaultCaseStudies() []CaseStudy {
	return []CaseStudy{
		{
			Title:    "Neighborhood Bistro",
			Industry: "Restaurant",
			Summary:  "Website revamp with online booking and WhatsApp ordering.",
			Metrics:  []string{"+37% bookings", "50% faster response time"},
		},
		{
			Title:    "Harborview Clinic",
			Industry: "Clinic",
			Summary:  "Appointment system, CRM routing, and autoresponders.",
			Metrics:  []string{"7 hours/week saved", "+22% show-up rate"},
		},
		{
			Title:    "Northstar Coaching",
			Industry: "Coaching",
			Summary:  "Lead capture pages with email automation and dashboards.",
			Metrics:  []string{"3x lead-to-call rate", "+18% revenue in 90 days"},
		},
	}
}

func DefaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			Name:  "Maya R.",
			Role:  strPtr("Clinic Manager"),
			Quote: "We finally run on one system. Patients book faster and our team gets time back.",
		},
		{
			Name:  "Andre C.",
			Role:  strPtr("Cafe Owner"),
			Quote: "Clean site, WhatsApp orders, and analytics that actually help. Simple and solid.",
		},
		{
			Name:  "Sofia K.",
			Role:  strPtr("Founder, SaaS"),
			Quote: "They automate the boring parts and take security seriously. It just works.",
		},
	}
}

func DefaultOrganizationProfile() OrganizationProfile {
	return OrganizationProfile{
		Name:    "NexTier Solutions",
		Tagline: "Empowering Digital Growth, Securely.",
		Email:   strPtr("hello@nextier.solutions"),
		Phone:   strPtr("+1 (555) 010-2025"),
		Address: strPtr("San Francisco, CA"),
		Website: strPtr("https://nextier.solutions"),
	}
}
