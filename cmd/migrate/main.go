package main

import (
	"log"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/config"
	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/database"
)

func main() {
	db, err := config.Connect(config.LoadDB())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Migration completed successfully")
}
