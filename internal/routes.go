package internal

import (
	"laleme/internal/controllers"
	"laleme/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/records", http.HandlerFunc(apiController.ListRecords))
	routers.Post("/records", http.HandlerFunc(apiController.AddRecord))
	routers.Get("/summary/health", http.HandlerFunc(apiController.GetHealth))
	routers.Get("/summary/statistics", http.HandlerFunc(apiController.GetStatistics))
	routers.Get("/summary/heatmap", http.HandlerFunc(apiController.GetHeatmap))
	routers.Get("/calendar", http.HandlerFunc(apiController.GetCalendar))
	routers.Get("/ranking", http.HandlerFunc(apiController.GetRanking))
	routers.Get("/profile", http.HandlerFunc(apiController.GetProfile))
	routers.Post("/profile", http.HandlerFunc(apiController.UpdateProfile))
	routers.Post("/profile/friends", http.HandlerFunc(apiController.AddFriend))
	routers.Get("/profile/qr", http.HandlerFunc(apiController.GetFriendCodeQR))
	routers.Get("/settings", http.HandlerFunc(apiController.GetSettings))
	routers.Post("/settings", http.HandlerFunc(apiController.UpdateSettings))
	return routers
}
