package swagger

import (
	_ "embed"
	"log"
	"net/http"
)

//go:embed embed/openapi.json
var openapiJSON []byte

// ServeSwagger добавляет маршруты для OpenAPI документа в указанный mux
//
// Создает следующие маршруты:
// - GET /swagger.json - OpenAPI спецификация сервиса
// - GET /openapi.json - то же самое под альтернативным именем
func ServeSwagger(mux *http.ServeMux) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		// Документ отдается любым клиентам, включая браузерные UI с других хостов
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(openapiJSON)
	}

	mux.HandleFunc("GET /swagger.json", handler)
	mux.HandleFunc("GET /openapi.json", handler)

	log.Println("Swagger JSON available at /swagger.json")
}
