package portfolio

var (
	DefaultName  = "Vaishnavi Pawar"
	DefaultTitle = "Graphic Designer | UI & Brand Creator | Digital Storyteller"

	DefaultHeading      = "Let's Build Something Cool Together 💌"
	DefaultSubtext      = "I'm currently open for freelance work, internships, or creative collabs."
	DefaultEmail        = "vaishnavi.pawar@example.com"
	DefaultLinkedInURL  = "https://linkedin.com/in/vaishnavipawar"
	DefaultBehanceURL   = "https://behance.net/vaishnavipawar"
	DefaultInstagramURL = "https://instagram.com/vaishnavipawar"

	DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=vaishnavi"
)

// DefaultTags returns the hero badge labels
func DefaultTags() []string {
	return []string{"Open to Work", "Creative Soul", "Design + Tech"}
}

// DefaultProjects returns a fresh copy of the showcased projects
func DefaultProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "ROOTX – Brand Identity",
			Role:         "Branding",
			Description:  "Complete brand identity design for an urban streetwear brand, including logo, typography system, and social media kit.",
			ImageURL:     "https://images.unsplash.com/photo-1523381294911-8d3cead13475?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#FF5EA0", // bubblegum pink
		},
		{
			ID:           "2",
			Title:        "Fommec Fridays",
			Role:         "Social Campaign",
			Description:  "Weekly contractor content series featuring carousel designs, animations, and engagement-focused storytelling.",
			ImageURL:     "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#E9FF70", // highlighter yellow
		},
		{
			ID:           "3",
			Title:        "Clothing App UI",
			Role:         "UI/UX",
			Description:  "End-to-end user flow design for a fashion e-commerce application with focus on seamless browsing and checkout experience.",
			ImageURL:     "https://images.unsplash.com/photo-1616499370260-485b3e5ed653?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#BB86FC", // accent purple
		},
		{
			ID:           "4",
			Title:        "TechVerse",
			Role:         "Event Creatives",
			Description:  "Comprehensive event branding package including digital assets, motion graphics, and promotional materials.",
			ImageURL:     "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#4ade80",
		},
		{
			ID:           "5",
			Title:        "Drum Machine",
			Role:         "Interaction Design",
			Description:  "Animated interaction design for a digital drum machine interface using Blender and web technologies.",
			ImageURL:     "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#f43f5e",
		},
		{
			ID:           "6",
			Title:        "Portfolio 2025",
			Role:         "Web Design",
			Description:  "Personal portfolio website with focus on showcasing creative work through an engaging and interactive experience.",
			ImageURL:     "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=800&q=80",
			CaseStudyURL: "#",
			Color:        "#38bdf8",
		},
	}
}

// DefaultTools returns a fresh copy of the toolbox
func DefaultTools() []Tool {
	return []Tool{
		{Name: "Photoshop", Icon: "🎨", Color: "bg-blue-500"},
		{Name: "Illustrator", Icon: "✏️", Color: "bg-orange-500"},
		{Name: "After Effects", Icon: "🎬", Color: "bg-purple-500"},
		{Name: "Figma", Icon: "🖌️", Color: "bg-green-500"},
		{Name: "Canva", Icon: "📱", Color: "bg-blue-400"},
		{Name: "Blender", Icon: "🧊", Color: "bg-orange-400"},
	}
}

// DefaultSkillCategories returns a fresh copy of the skill categories
func DefaultSkillCategories() []SkillCategory {
	return []SkillCategory{
		{
			Name:   "UI/UX",
			Color:  "bg-[#E9FF70] text-black",
			Skills: []string{"Wireframing", "Prototyping", "User Research", "Interaction Design"},
		},
		{
			Name:   "Branding",
			Color:  "bg-[#FF5EA0] text-white",
			Skills: []string{"Logo Design", "Brand Guidelines", "Visual Identity", "Brand Strategy"},
		},
		{
			Name:   "Social Campaigns",
			Color:  "bg-[#BB86FC] text-white",
			Skills: []string{"Content Creation", "Campaign Planning", "Social Media Design"},
		},
		{
			Name:   "Typography",
			Color:  "bg-[#FFF4F0] text-black",
			Skills: []string{"Font Pairing", "Typesetting", "Custom Lettering"},
		},
		{
			Name:   "Motion Design",
			Color:  "bg-cyan-400 text-black",
			Skills: []string{"Animation", "Transitions", "Video Editing"},
		},
	}
}
