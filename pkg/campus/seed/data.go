package seed

import "github.com/tendant/campus-content/pkg/campus"

const unsplash = "?ixlib=rb-4.0.3&auto=format&fit=crop"

func photo(id, size string) string {
	return "https://images.unsplash.com/photo-" + id + unsplash + "&" + size
}

// Programs returns fresh copies of the default programs.
func Programs() []*campus.Program {
	return []*campus.Program{
		{
			Title:       "Engineering Technology",
			Description: "Comprehensive program covering mechanical, electrical, and civil engineering principles with hands-on laboratory experience.",
			Duration:    "2-3 Years",
			Category:    "Engineering",
			Featured:    true,
			Icon:        "fas fa-cogs",
			Image:       photo("1581092160562-40aa08e78837", "w=600&h=300"),
			Color:       "poly-blue",
		},
		{
			Title:       "Computing Technology",
			Description: "Modern computing curriculum including Artificial intelligence, networking, cybersecurity, and software development.",
			Duration:    "2-3 Years",
			Category:    "Technology",
			Featured:    true,
			Icon:        "fas fa-laptop-code",
			Image:       photo("1516321318423-f06f85e504b3", "w=600&h=300"),
			Color:       "poly-green",
		},
		{
			Title:       "Business Administration",
			Description: "Comprehensive business education covering management, marketing, finance, and entrepreneurship skills.",
			Duration:    "2-3 Years",
			Category:    "Business",
			Featured:    true,
			Icon:        "fas fa-chart-line",
			Image:       photo("1507003211169-0a1dd7228f2d", "w=600&h=300"),
			Color:       "poly-red",
		},
	}
}

// Events returns the default event calendar.
func Events() []*campus.Event {
	return []*campus.Event{
		{
			Title:       "Annual Technology Innovation Summit",
			Description: "Join industry leaders and students for a day of innovation, networking, and technology showcase featuring the latest trends in engineering and computer science.",
			Date:        day("2025-01-15"),
			Time:        "2:00 PM - 6:00 PM",
			Location:    "Main Auditorium",
			Category:    "Technology",
			Featured:    true,
		},
		{
			Title:       "Career Fair & Job Placement Drive",
			Description: "Meet with top employers from various industries. Excellent opportunity for final year students and recent graduates to explore career opportunities.",
			Date:        day("2025-01-22"),
			Time:        "10:00 AM - 4:00 PM",
			Location:    "Sports Complex",
			Category:    "Career",
		},
		{
			Title:       "Entrepreneurship Bootcamp",
			Description: "3-day intensive program on starting and scaling tech businesses. Learn from successful entrepreneurs and industry mentors.",
			Date:        day("2025-01-28"),
			Time:        "9:00 AM - 5:00 PM",
			Location:    "Innovation Hub",
			Category:    "Workshop",
		},
		{
			Title:       "Annual Cultural Festival",
			Description: "Celebrate Nigeria's rich cultural heritage with music, dance, art exhibitions, and traditional cuisine from across the nation.",
			Date:        day("2025-02-05"),
			Time:        "12:00 PM - 10:00 PM",
			Location:    "Campus Grounds",
			Category:    "Cultural",
		},
		{
			Title:       "Inter-Polytechnic Sports Championship",
			Description: "Annual sports competition featuring football, basketball, athletics, and other sporting events with polytechnics across Nigeria.",
			Date:        day("2025-02-12"),
			Time:        "8:00 AM - 6:00 PM",
			Location:    "Sports Complex",
			Category:    "Sports",
		},
		{
			Title:       "AI & Machine Learning Workshop",
			Description: "Hands-on workshop exploring artificial intelligence applications in engineering and business. Open to all students and faculty.",
			Date:        day("2025-02-18"),
			Time:        "1:00 PM - 5:00 PM",
			Location:    "Computer Lab A",
			Category:    "Workshop",
		},
	}
}

func member(name, position, bio, image, email string) *campus.ManagementMember {
	return &campus.ManagementMember{
		Name:        name,
		Position:    position,
		Bio:         bio,
		Image:       image,
		Email:       str(email),
		SocialLinks: &campus.SocialLinks{LinkedIn: str("#"), Email: str(email)},
	}
}

// Management returns the leadership team in display order.
func Management() []*campus.ManagementMember {
	return []*campus.ManagementMember{
		member("Dr. Sani ManYahya", "Rector",
			"Distinguished academic leader with over 25 years of experience in technical education and institutional management.",
			"/rector.jpg", "rector@fedpolyede.edu.ng"),
		member("Alh Lawal Isiaka A.", "Deputy Rector (Academic)",
			"Expert in curriculum development and academic excellence with a focus on innovative teaching methodologies.",
			"/dracad.jpg", "deputyrector@fedpolyede.edu.ng"),
		member("Dr Ileladewa A. A", "Deputy Rector (Administration)",
			"Computer Science professional with extensive experience in administrative leadership and institutional development.",
			"/dr_admin.jpg", "deputyrectoradmin@fedpolyede.edu.ng"),
		member("Ms. Margareth Oyedoyin R.", "Ag. Registrar",
			"Seasoned administrator ensuring smooth operations and maintaining the highest standards of institutional governance.",
			"/registrar.jpg", "registrar@fedpolyede.edu.ng"),
		member("Mr Titus Olagunju", "Ag. Bursar",
			"Financial management expert overseeing the polytechnic's fiscal operations and ensuring transparent financial governance.",
			"/bursar.jpg", "bursar@fedpolyede.edu.ng"),
		member("Dr. Akorede Muftau", "Polytechnic Librarian",
			"Information science specialist leading the development of digital learning resources and knowledge management systems.",
			"/librarian.jpg", "librarian@fedpolyede.edu.ng"),
	}
}

func Testimonials() []*campus.Testimonial {
	return []*campus.Testimonial{
		{
			Name:     "Agbeniga Musefiu",
			Position: "CTO",
			Company:  "AidaPay",
			Content:  "Federal Polytechnic Ede gave me the technical foundation and practical skills I needed to excel in the tech industry. The hands-on learning approach enabled me to launch my startup.",
			Image:    "/musefiu.jpg",
			Rating:   5,
			Featured: true,
		},
		{
			Name:     "Castro",
			Position: "Programmer",
			Company:  "Interswitch",
			Content:  "The entrepreneurship program at FedPolyEde was instrumental in launching my leather goods startup. The mentorship and business incubation support were invaluable.",
			Image:    "/castro.jpg",
			Rating:   5,
			Featured: true,
		},
		{
			Name:     "Ms Kafayat Shittu",
			Position: "MidFielder",
			Company:  "Giresun Sanayispor FC- Turkey.",
			Content:  "In addition to the intense and engaging scholarship we receive at FedPolyEde, the academic calendar is never concluded without sporting competition- we learn , we play! This has really helped shaped my career in football.",
			Image:    "/kafayat.jpg",
			Rating:   5,
			Featured: true,
		},
	}
}

func Achievements() []*campus.Achievement {
	return []*campus.Achievement{
		{Title: "National Excellence Award", Description: "Best Polytechnic in Technical Education 2023", Icon: "fas fa-award", Year: year(2023), Featured: true},
		{Title: "NSQ Certification", Description: "Quality Management System Certified", Icon: "fas fa-certificate", Year: year(2022), Featured: true},
		{Title: "International Partnership", Description: "Collaborations with 15+ Global Universities", Icon: "fas fa-globe", Year: year(2024), Featured: true},
		{Title: "Innovation Hub", Description: "5+ Patent Applications Filed", Icon: "fas fa-lightbulb", Year: year(2024), Featured: true},
	}
}

func Facilities() []*campus.Facility {
	return []*campus.Facility{
		{
			Name:        "Advanced Computer Labs",
			Description: "Modern computing facilities with latest software and high-speed internet connectivity.",
			Image:       photo("1581092918056-0c4c3acd3789", "w=600&h=300"),
			Category:    "Technology",
			Featured:    true,
		},
		{
			Name:        "Engineering Workshops",
			Description: "Fully equipped workshops with industrial-grade machinery and tools for hands-on learning.",
			Image:       photo("1581092160562-40aa08e78837", "w=600&h=300"),
			Category:    "Engineering",
			Featured:    true,
		},
		{
			Name:        "Digital Library",
			Description: "Extensive collection of books, journals, and digital resources for research and study.",
			Image:       photo("1481627834876-b7833e8f5570", "w=600&h=300"),
			Category:    "Academic",
			Featured:    true,
		},
		{
			Name:        "Science Laboratories",
			Description: "Well-equipped labs for chemistry, physics, and biology with modern instruments.",
			Image:       photo("1582719471384-894fbb16e074", "w=600&h=300"),
			Category:    "Science",
			Featured:    true,
		},
		{
			Name:        "Main Auditorium",
			Description: "1,200-capacity auditorium for lectures, seminars, and cultural events.",
			Image:       photo("1540575467063-178a50c2df87", "w=600&h=300"),
			Category:    "Academic",
			Featured:    true,
		},
		{
			Name:        "Student Housing",
			Description: "Modern dormitories providing comfortable accommodation for students from across Nigeria.",
			Image:       photo("1564013799919-ab600027ffc6", "w=600&h=300"),
			Category:    "Accommodation",
			Featured:    true,
		},
	}
}

func Alumni() []*campus.Alumnus {
	return []*campus.Alumnus{
		{
			Name:           "Mrs Adedoyin Balogun",
			Position:       "Alumni President",
			Company:        "Federal Polytechnic Ede",
			Content:        "FedPolyEde shaped my mindset and work ethic, preparing me for leadership roles.",
			Image:          "/alumnipres.jpg",
			GraduationYear: year(1995),
			Featured:       true,
		},
		{
			Name:           "Dr. Adekunle Adewale",
			Position:       "Director, ICT",
			Company:        "Federal Polytechnic Ede",
			Content:        "The technical skills fostered at FedPolyEde gave me the confidence to develop cutting edge solutions for the institution.",
			Image:          "/musefiu.jpg",
			GraduationYear: year(1994),
			Featured:       true,
		},
		{
			Name:           "Engr. Mutiu Agboola",
			Position:       "Sub-Dean, Student Affairs",
			Company:        "Federal Polytechnic Ede",
			Content:        "The training I received continues to serve me well in coordinating and directing the Student affairs Unit.",
			Image:          "/mutiu.jpg",
			GraduationYear: year(2000),
			Featured:       true,
		},
	}
}

// News returns the default articles. Publish times are assigned on insert.
func News() []*campus.News {
	return []*campus.News{
		{
			Title:    "Federal Polytechnic Ede Receives N2.5 Billion Infrastructure Grant",
			Content:  "The Federal Government has approved a substantial N2.5 billion infrastructure development grant for Federal Polytechnic Ede, aimed at modernizing laboratories, workshops, and campus facilities. This investment will significantly enhance the institution's capacity to deliver world-class technical education and prepare students for Industry 4.0 challenges.",
			Summary:  "FedPolyEde receives major federal grant for infrastructure development and modernization of learning facilities.",
			Category: "Infrastructure",
			Featured: true,
			Image:    photo("1486406146926-c627a92ad1ab", "w=800&h=400"),
		},
		{
			Title:    "New Partnership with Microsoft Nigeria for Digital Skills Training",
			Content:  "Federal Polytechnic Ede has signed a groundbreaking partnership agreement with Microsoft Nigeria to provide advanced digital skills training for students and faculty. The collaboration includes access to Microsoft Azure cloud services, Office 365 Educational licenses, and specialized certification programs in data science and artificial intelligence.",
			Summary:  "Strategic partnership with Microsoft Nigeria to enhance digital literacy and cloud computing skills.",
			Category: "Technology",
			Featured: true,
			Image:    photo("1516321318423-f06f85e504b3", "w=800&h=400"),
		},
		{
			Title:    "FedPolyEde Students Win National Innovation Challenge",
			Content:  "A team of Engineering Technology students from Federal Polytechnic Ede has emerged winners of the 2024 National Innovation Challenge with their revolutionary water purification system designed for rural communities. The solar-powered device can process 500 liters of clean water daily and has attracted interest from international development organizations.",
			Summary:  "Student innovation team wins national competition with groundbreaking water purification technology.",
			Category: "Innovation",
			Image:    photo("1581092160562-40aa08e78837", "w=800&h=400"),
		},
		{
			Title:    "New Centre for Renewable Energy Technology Launched",
			Content:  "The Federal Polytechnic Ede has officially launched its Centre for Renewable Energy Technology, a state-of-the-art facility dedicated to research and training in solar, wind, and biomass energy systems. The centre will serve as a hub for sustainable energy research and provide specialized training programs for industry professionals.",
			Summary:  "Launch of dedicated renewable energy research and training centre on campus.",
			Category: "Research",
			Image:    photo("1509391366360-2e959784a276", "w=800&h=400"),
		},
		{
			Title:    "International Accreditation for Engineering Programs",
			Content:  "Federal Polytechnic Ede's Engineering Technology programs have received international accreditation from the International Engineering Alliance (IEA), making graduates eligible for professional recognition in over 20 countries. This achievement positions the institution among the top technical education providers in West Africa.",
			Summary:  "Engineering programs receive prestigious international accreditation from IEA.",
			Category: "Accreditation",
			Image:    photo("1581092918056-0c4c3acd3789", "w=800&h=400"),
		},
	}
}

func stat(dataType, title, value, description, category string) *campus.InstitutionalData {
	return &campus.InstitutionalData{
		DataType:    dataType,
		Title:       title,
		Value:       value,
		Description: str(description),
		Category:    category,
	}
}

// InstitutionalData returns the headline statistics.
func InstitutionalData() []*campus.InstitutionalData {
	return []*campus.InstitutionalData{
		stat("enrollment", "Total Student Enrollment", "15,000", "Current academic session total enrollment across all programs", "Student Statistics"),
		stat("graduation_rate", "Graduate Success Rate", "97.8%", "Percentage of students who successfully complete their programs", "Academic Performance"),
		stat("employment_rate", "Graduate Employment Rate", "87.5%", "Percentage of graduates employed within 6 months of graduation", "Career Outcomes"),
		stat("faculty_count", "Total Faculty Members", "400", "Number of full-time academic staff across all departments", "Human Resources"),
		stat("programs_offered", "Academic Programs", "40", "Total number of accredited programs offered across all schools", "Academic Offerings"),
		stat("research_grants", "Active Research Grants", "₦850M", "Total value of current research grants and funding", "Research & Innovation"),
		stat("international_partnerships", "International Partnerships", "10", "Number of active partnerships with international institutions", "Global Engagement"),
		stat("industry_collaborations", "Industry Collaborations", "50", "Number of active partnerships with industry organizations", "Industry Relations"),
		stat("infrastructure_investment", "Infrastructure Investment (2024)", "₦4.2B", "Total investment in infrastructure development this year", "Infrastructure"),
		stat("digital_resources", "Digital Library Resources", "75,000+", "Number of digital books, journals, and research materials", "Digital Resources"),
	}
}
