package database

import (
	"log"

	config "github.com/aurelienmx/skillmarket/configs"
	"github.com/aurelienmx/skillmarket/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedFixtures loads the reference data the marketplace depends on, plus a
// demo provider and client for local development. Safe to run on every
// boot: each block is guarded by a count check.
func SeedFixtures() {
	seedCountries()
	seedLanguages()
	seedJobs()
	seedHardSkills()
	seedSoftSkills()
	seedTags()
	seedDemoAccounts()
}

func seedCountries() {
	var count int64
	DB.Model(&models.Country{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{"France", "Belgique", "Suisse", "Canada", "Maroc", "Sénégal"} {
		if err := DB.Create(&models.Country{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed country %q: %v", name, err)
		}
	}
	log.Println("✅ Countries seeded")
}

func seedLanguages() {
	var count int64
	DB.Model(&models.Language{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{"Français", "Anglais", "Espagnol", "Allemand", "Arabe"} {
		if err := DB.Create(&models.Language{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed language %q: %v", name, err)
		}
	}
	log.Println("✅ Languages seeded")
}

func seedJobs() {
	var count int64
	DB.Model(&models.Job{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{
		"Développeur web", "Designer graphique", "Rédacteur", "Consultant marketing",
		"Photographe", "Traducteur", "Data analyst",
	} {
		if err := DB.Create(&models.Job{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed job %q: %v", name, err)
		}
	}
	log.Println("✅ Jobs seeded")
}

func seedHardSkills() {
	var count int64
	DB.Model(&models.HardSkill{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{"PHP", "JavaScript", "Photoshop", "SEO", "WordPress", "Figma"} {
		if err := DB.Create(&models.HardSkill{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed hard skill %q: %v", name, err)
		}
	}
	log.Println("✅ Hard skills seeded")
}

func seedSoftSkills() {
	var count int64
	DB.Model(&models.SoftSkill{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{"Autonomie", "Créativité", "Rigueur", "Esprit d'équipe", "Communication"} {
		if err := DB.Create(&models.SoftSkill{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed soft skill %q: %v", name, err)
		}
	}
	log.Println("✅ Soft skills seeded")
}

func seedTags() {
	var count int64
	DB.Model(&models.Tag{}).Count(&count)
	if count > 0 {
		return
	}
	for _, name := range []string{"Web", "Design", "Marketing", "IA", "Mobile", "E-commerce"} {
		if err := DB.Create(&models.Tag{Name: name}).Error; err != nil {
			log.Fatalf("🔥 Failed to seed tag %q: %v", name, err)
		}
	}
	log.Println("✅ Tags seeded")
}

func seedDemoAccounts() {
	demoEmail := config.Config("DEMO_PROVIDER_EMAIL")
	demoPassword := config.Config("DEMO_ACCOUNT_PASSWORD")
	if demoEmail == "" || demoPassword == "" {
		return
	}

	var count int64
	DB.Model(&models.Provider{}).Where("email = ?", demoEmail).Count(&count)
	if count > 0 {
		log.Println("Demo accounts already exist.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash demo password: %v", err)
	}

	provider := models.Provider{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     demoEmail,
		Password:  string(hashed),
	}
	if err := DB.Create(&provider).Error; err != nil {
		log.Fatalf("🔥 Failed to seed demo provider: %v", err)
	}

	client := models.Client{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "demo-client@" + afterAt(demoEmail),
		Password:  string(hashed),
	}
	if err := DB.Create(&client).Error; err != nil {
		log.Fatalf("🔥 Failed to seed demo client: %v", err)
	}

	log.Println("✅ Demo accounts seeded")
}

func afterAt(email string) string {
	for i := range email {
		if email[i] == '@' {
			return email[i+1:]
		}
	}
	return "example.com"
}
