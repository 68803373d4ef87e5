package views

type journeyEntry struct {
	Period  string
	Role    string
	Summary string
	Accent  string
	Wide    bool
}

var (
	journey = []journeyEntry{
		{
			Period:  "📚 2022 – Present",
			Role:    "B.Tech in Computer Science – MESCoE",
			Summary: "Active in GDG, FOSS, TechVerse, and design cells",
			Accent:  "#E9FF70",
		},
		{
			Period:  "🎨 2023 – Present",
			Role:    "Graphic & UI Designer – GDG MESCOE",
			Summary: "Event banners, UI flows, motion posts, team coordination",
			Accent:  "#FF5EA0",
		},
		{
			Period:  "🧠 2024",
			Role:    "Branding Lead – ROOTX (Freelance)",
			Summary: "Logo, social kit, motion reveal",
			Accent:  "#BB86FC",
			Wide:    true,
		},
	}

	lovesDesigning     = []string{"Posters", "Logos", "UI Flows", "Social Media", "Motion Graphics"}
	currentlyExploring = []string{"Motion Graphics", "AR Filters", "Fashion UI", "3D Design"}

	motto = `"Design is how I connect tech with emotion."`

	backgroundSquiggles = []string{
		"M10,30 Q20,0 30,30 T50,30 T70,30 T90,30",
		"M10,50 Q30,20 50,50 T90,50",
		"M10,70 Q40,40 70,70 T130,70",
	}
)
