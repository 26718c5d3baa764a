package database

import "github.com/gsccapital/website/api/internal/dto"

// SeedData is the starter content loaded by the seed command.
type SeedData struct {
	Companies    []dto.CompanyRequest
	Statistics   []dto.StatisticRequest
	Testimonials []dto.TestimonialRequest
	Services     []dto.ServiceRequest
	AdminEmail   string
	AdminName    string
}

// DefaultSeed returns the demo dataset for a fresh installation.
func DefaultSeed() SeedData {
	return SeedData{
		Companies: []dto.CompanyRequest{
			seedCompany("Roomy Finder", "roomy-finder", "Find your perfect living space with our intelligent property matching platform",
				"Home", "from-blue-600 to-cyan-600", 0,
				[]string{"AI-powered recommendations", "Virtual tours", "Price comparisons", "Neighborhood insights"},
				[][2]string{{"Property Search", "Advanced search algorithms"}, {"Virtual Tours", "360-degree property viewing"}}),
			seedCompany("IT Solutions", "it-solutions", "Cutting-edge technology solutions to transform your business operations",
				"Laptop", "from-purple-600 to-pink-600", 1,
				[]string{"Cloud infrastructure", "Cybersecurity", "Software development", "IT consulting"},
				[][2]string{{"Cloud Migration", "Seamless cloud transition"}, {"Security Audit", "Comprehensive security assessment"}}),
			seedCompany("Real Estate", "real-estate", "Premium real estate services for residential and commercial properties",
				"Building2", "from-green-600 to-emerald-600", 2,
				[]string{"Property management", "Investment analysis", "Market research", "Legal support"},
				[][2]string{{"Property Sales", "Residential and commercial"}, {"Market Analysis", "Real-time market insights"}}),
			seedCompany("Consulting", "consulting", "Strategic business consulting to drive growth and innovation",
				"Users", "from-orange-600 to-red-600", 3,
				[]string{"Business strategy", "Process optimization", "Change management", "Risk assessment"},
				[][2]string{{"Strategy Planning", "Long-term business strategy"}, {"Process Improvement", "Operational excellence"}}),
			seedCompany("Investment", "investment", "Smart investment opportunities with expert guidance and analysis",
				"TrendingUp", "from-indigo-600 to-blue-600", 4,
				[]string{"Portfolio management", "Risk analysis", "Market insights", "Wealth planning"},
				[][2]string{{"Portfolio Management", "Diversified investment strategies"}, {"Risk Assessment", "Comprehensive risk analysis"}}),
		},
		Statistics: []dto.StatisticRequest{
			{Label: "Properties Managed", Value: "10,000+", Icon: "Building2", Order: intPtr(0)},
			{Label: "IT Projects Completed", Value: "500+", Icon: "Laptop", Order: intPtr(1)},
			{Label: "Consulting Clients", Value: "1,000+", Icon: "Users", Order: intPtr(2)},
			{Label: "Investment Portfolio", Value: "$500M+", Icon: "TrendingUp", Order: intPtr(3)},
		},
		Testimonials: []dto.TestimonialRequest{
			seedTestimonial("Sarah Johnson", "Tech Innovations Inc.", "CEO",
				"GSC Capital Group transformed our business with their comprehensive IT solutions and strategic consulting.", 0),
			seedTestimonial("Michael Chen", "Global Properties Ltd.", "Managing Director",
				"Their real estate expertise helped us find the perfect commercial space for our expansion.", 1),
			seedTestimonial("Emily Rodriguez", "StartUp Ventures", "Founder",
				"The investment guidance from GSC Capital Group has been invaluable for our growth strategy.", 2),
		},
		Services: []dto.ServiceRequest{
			{Title: "Property Search & Discovery", Description: "Advanced algorithms to match you with perfect properties", Category: "property", Icon: "Search", Order: intPtr(0)},
			{Title: "Cybersecurity Solutions", Description: "Protect your business with enterprise-grade security", Category: "tech", Icon: "Shield", Order: intPtr(1)},
			{Title: "Market Analysis", Description: "Data-driven insights for informed decision making", Category: "business", Icon: "BarChart3", Order: intPtr(2)},
			{Title: "Strategic Planning", Description: "Custom strategies for sustainable business growth", Category: "consulting", Icon: "Lightbulb", Order: intPtr(3)},
		},
		AdminEmail: "admin@gsccapitalgroup.com",
		AdminName:  "Admin User",
	}
}

func seedCompany(name, slug, description, icon, color string, order int, features []string, services [][2]string) dto.CompanyRequest {
	req := dto.CompanyRequest{
		Name:        name,
		Slug:        slug,
		Description: description,
		Icon:        icon,
		Color:       color,
		Order:       intPtr(order),
	}
	for _, title := range features {
		req.Features = append(req.Features, dto.CompanyFeatureInput{Title: title})
	}
	for _, svc := range services {
		description := svc[1]
		req.Services = append(req.Services, dto.CompanyServiceInput{Title: svc[0], Description: &description})
	}
	return req
}

func seedTestimonial(name, company, role, content string, order int) dto.TestimonialRequest {
	rating := 5
	return dto.TestimonialRequest{
		Name:    name,
		Company: &company,
		Role:    &role,
		Content: content,
		Rating:  &rating,
		Order:   intPtr(order),
	}
}

func intPtr(v int) *int { return &v }
