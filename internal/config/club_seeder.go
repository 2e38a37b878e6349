package config

import (
	"log"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"

	"gorm.io/gorm"
)

type clubSeed struct {
	Name             string
	Category         domain.ClubCategory
	Description      string
	CoordinatorName  string
	CoordinatorEmail string
	CoordinatorPhone string
}

// campus club directory shipped with the portal
var clubSeeds = []clubSeed{
	{
		Name:             "Hackhound",
		Category:         domain.ClubTechnical,
		Description:      "Premier coding and hackathon club. Coding competitions, workshops, and national-level hackathons.",
		CoordinatorName:  "Dr. Oshin Sharma",
		CoordinatorEmail: "oshins1@srmist.edu.in",
		CoordinatorPhone: "7619187871",
	},
	{
		Name:             "E-Sports Club",
		Category:         domain.ClubEsports,
		Description:      "Competitive gaming club hosting tournaments and building teams for inter-college competitions.",
		CoordinatorName:  "Himanshu",
		CoordinatorEmail: "himanshs1@srmist.edu.in",
		CoordinatorPhone: "9457372686",
	},
	{
		Name:             "GeeksforGeeks SRM",
		Category:         domain.ClubTechnical,
		Description:      "Official GeeksforGeeks student chapter. Coding bootcamps, DSA workshops and placement preparation.",
		CoordinatorName:  "Nidhi Pandey",
		CoordinatorEmail: "nidhip@srmist.edu.in",
		CoordinatorPhone: "8707072700",
	},
	{
		Name:             "Kalamgiri Literary Club",
		Category:         domain.ClubLiterary,
		Description:      "Poetry slams, creative writing workshops, open mic nights and a student literary magazine.",
		CoordinatorName:  "Ms. Prerna Sharma",
		CoordinatorEmail: "prernas@srmist.edu.in",
		CoordinatorPhone: "9650410672",
	},
	{
		Name:             "NSS - National Service Scheme",
		Category:         domain.ClubSocialService,
		Description:      "Community service and social welfare: blood donation camps, environmental drives and awareness campaigns.",
		CoordinatorName:  "Dr. Nirmal Sharma",
		CoordinatorEmail: "nirmals@srmist.edu.in",
		CoordinatorPhone: "8266080984",
	},
	{
		Name:             "NCC - National Cadet Corps",
		Category:         domain.ClubSocialService,
		Description:      "Character and discipline through military training, camps and adventure activities.",
		CoordinatorName:  "Dr. Sandeep Kumar",
		CoordinatorEmail: "sandeepd@srmist.edu.in",
		CoordinatorPhone: "9012355511",
	},
	{
		Name:             "Rangeen Pixels - Photography Club",
		Category:         domain.ClubPhotography,
		Description:      "Photography walks, editing workshops, photo exhibitions and portfolio building.",
		CoordinatorName:  "Anjali Malik",
		CoordinatorEmail: "anjalim1@srmist.edu.in",
		CoordinatorPhone: "8265958001",
	},
	{
		Name:             "ISTE - Indian Society for Technical Education",
		Category:         domain.ClubTechnical,
		Description:      "Technical seminars, industrial visits and skill development programs.",
		CoordinatorName:  "Dr. Swati Bhatt",
		CoordinatorEmail: "swatib@srmist.edu.in",
		CoordinatorPhone: "9910874774",
	},
	{
		Name:             "SRMNMUN - Model United Nations",
		Category:         domain.ClubDebate,
		Description:      "MUN conferences, public speaking and international relations through simulated UN sessions.",
		CoordinatorName:  "Dr. Niranjan Lal",
		CoordinatorEmail: "niranjal@srmist.edu.in",
		CoordinatorPhone: "9993110445",
	},
	{
		Name:             "Cultural Committee",
		Category:         domain.ClubCultural,
		Description:      "Annual fests, cultural nights, dance competitions and music events.",
		CoordinatorName:  "Dr. Megha Gupta Chaudhary",
		CoordinatorEmail: "meghagua@srmist.edu.in",
		CoordinatorPhone: "9411176543",
	},
	{
		Name:             "Robotics Club",
		Category:         domain.ClubTechnical,
		Description:      "Robotics projects from line followers to autonomous drones, plus national competitions.",
		CoordinatorName:  "Ms. Harshita Tyagi",
		CoordinatorEmail: "harshitatyagi@srmist.edu.in",
		CoordinatorPhone: "8791438997",
	},
	{
		Name:             "Entrepreneurship Cell",
		Category:         domain.ClubTechnical,
		Description:      "Startup pitches, business plan competitions, mentorship and investor connections.",
		CoordinatorName:  "Dr. Oshin Sharma",
		CoordinatorEmail: "oshins1@srmist.edu.in",
		CoordinatorPhone: "7619187871",
	},
	{
		Name:             "SAE India - Automotive Club",
		Category:         domain.ClubTechnical,
		Description:      "Design and build vehicles for BAJA, SUPRA and other SAE competitions.",
		CoordinatorName:  "Dr. Gyanendra P Bagri",
		CoordinatorEmail: "hod.mech.ncr@srmist.edu.in",
		CoordinatorPhone: "9456905782",
	},
	{
		Name:             "Wellness & Yoga Club",
		Category:         domain.ClubSports,
		Description:      "Yoga sessions, meditation workshops and stress management programs.",
		CoordinatorName:  "Dr. Garima Pandey",
		CoordinatorEmail: "garimap@srmist.edu.in",
		CoordinatorPhone: "9897297255",
	},
	{
		Name:             "IEEE Student Branch",
		Category:         domain.ClubTechnical,
		Description:      "Workshops, hackathons, technical paper presentations and professional networking.",
		CoordinatorName:  "Dr. Pallavi Jain",
		CoordinatorEmail: "pallavij@srmist.edu.in",
		CoordinatorPhone: "9219703700",
	},
	{
		Name:             "AI/ML Club",
		Category:         domain.ClubTechnical,
		Description:      "Real-world AI projects, workshops and Kaggle competitions.",
		CoordinatorName:  "Dr. M. Vinoth Kumar",
		CoordinatorEmail: "vinothkm@srmist.edu.in",
		CoordinatorPhone: "8272818152",
	},
}

// SeedClubs seeds the club directory; existing clubs are left untouched
func SeedClubs(db *gorm.DB) error {
	for _, seed := range clubSeeds {
		var existing models.Club
		err := db.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		club := models.Club{
			Name:     seed.Name,
			Category: seed.Category,
			IsActive: true,
		}
		description := seed.Description
		club.Description = &description
		coordinatorName := seed.CoordinatorName
		club.CoordinatorName = &coordinatorName
		if seed.CoordinatorEmail != "" {
			email := seed.CoordinatorEmail
			club.CoordinatorEmail = &email
		}
		if seed.CoordinatorPhone != "" {
			phone := seed.CoordinatorPhone
			club.CoordinatorPhone = &phone
		}

		if err := db.Create(&club).Error; err != nil {
			return err
		}
		log.Printf("   Created club: %s", club.Name)
	}

	log.Println("✅ Club directory seeded successfully")
	return nil
}
