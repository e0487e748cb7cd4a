package di

import (
	"roombook/internal/seed"
	"roombook/transport/http"
)

// App bundles everything main needs to boot the service.
type App struct {
	HTTP   *http.HTTP
	Seeder seed.Seeder
}
