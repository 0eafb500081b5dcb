package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

func Connect(path, bootstrapCode string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.Address{}, &model.Invitation{}); err != nil {
		log.Fatal(err)
	}
	addBootstrapInvitation(db, bootstrapCode)
	return db
}

// addBootstrapInvitation seeds an initial invitation code so the very first
// visitor can get in. Only runs against an empty invitations table.
func addBootstrapInvitation(db *gorm.DB, code string) {
	if code == "" {
		return
	}

	var result int64
	db.Table("invitations").Count(&result)

	if result == 0 {
		invitation := &model.Invitation{
			Code:        model.NormalizeCode(code),
			IsValid:     true,
			Description: "Initialer Einladungscode",
		}
		if result := db.Create(&invitation); result.Error != nil {
			log.Fatal("Couldn't create bootstrap invitation code")
		}
	}
}
