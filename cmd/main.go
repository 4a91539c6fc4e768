package main

import (
	"github.com/sivakadari517-cloud/fitxgen-sub000/config"
	"github.com/sivakadari517-cloud/fitxgen-sub000/routes"
	"github.com/sivakadari517-cloud/fitxgen-sub000/services"
	"github.com/sivakadari517-cloud/fitxgen-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
