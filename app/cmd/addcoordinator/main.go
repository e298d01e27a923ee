// Command addcoordinator seeds a coordinator with login credentials,
// for bootstrapping a fresh installation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/config"
	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/database"
	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func main() {
	name := flag.String("name", "", "coordinator full name")
	phone := flag.String("phone", "", "ten-digit cell phone")
	staff := flag.String("staff", "", "staff number")
	email := flag.String("email", "", "login email")
	secret := flag.String("secret", "", "login secret")
	flag.Parse()

	if *name == "" || *phone == "" || *staff == "" || *email == "" || *secret == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := config.Connect(config.LoadDB())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	coordinator := &models.Coordinator{
		User: models.User{
			FullName:  *name,
			CellPhone: *phone,
			Status:    models.UserActive,
		},
		StaffNumber: *staff,
	}
	if err := database.CreateCoordinator(db, coordinator); err != nil {
		log.Fatal("Failed to create coordinator: ", err)
	}

	account := &models.Account{UserID: coordinator.ID, Email: *email}
	if err := database.CreateAccount(db, account, *secret); err != nil {
		log.Fatal("Failed to create account: ", err)
	}

	fmt.Printf("Coordinator created: %s (staff %s, user id %d)\n",
		coordinator.FullName, coordinator.StaffNumber, coordinator.ID)
}
