package main

import (
	"fmt"
	"net/http"

	"github.com/c-senju/ponto-fazenda/internal/config"
	"github.com/c-senju/ponto-fazenda/internal/domain/holiday"
	appHTTP "github.com/c-senju/ponto-fazenda/internal/handler/http"
	"github.com/c-senju/ponto-fazenda/internal/pkg/cron"
	"github.com/c-senju/ponto-fazenda/internal/pkg/database"
	"github.com/c-senju/ponto-fazenda/internal/pkg/holidayapi"
	"github.com/c-senju/ponto-fazenda/internal/repository/postgresql"
	deviceService "github.com/c-senju/ponto-fazenda/internal/service/device"
	holidayService "github.com/c-senju/ponto-fazenda/internal/service/holiday"
	punchService "github.com/c-senju/ponto-fazenda/internal/service/punch"
	reconcileService "github.com/c-senju/ponto-fazenda/internal/service/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)

	directory := config.EmployeeDirectory()

	municipalMonth, municipalDay := cfg.MunicipalMonthDay()
	holidaySvc := holidayService.NewHolidayService(
		[]holiday.Provider{
			holidayapi.NewBrasilAPIProvider(),
			holidayapi.NewNagerProvider(cfg.Holiday.CountryCode),
		},
		[]holidayService.LocalHoliday{
			{Month: municipalMonth, Day: municipalDay, Name: cfg.Holiday.MunicipalName},
		},
	)
	punchSvc := punchService.NewPunchService(punchRepo, directory)
	deviceSvc := deviceService.NewDeviceService(deviceRepo, punchRepo, cfg.Device.SilenceThreshold)
	reconcileSvc := reconcileService.NewReconcileService(punchRepo, deviceRepo, directory, holidaySvc)

	reportHandler := appHTTP.NewReportHandler(reconcileSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	deviceHandler := appHTTP.NewDeviceHandler(deviceSvc)

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidaySvc).RegisterJobs(scheduler)
	cron.NewDeviceJobs(deviceRepo, cfg.Device.SilenceThreshold).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		reportHandler,
		punchHandler,
		holidayHandler,
		deviceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
