package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// handleVisionComercial serves the drill-down card. The response mixes
// text, image, and file fields so every block kind shows up in the
// frontends.
func handleVisionComercial(w http.ResponseWriter, r *http.Request) {
	nivel := r.URL.Query().Get("nivel")
	unidad := r.URL.Query().Get("unidad")

	if nivel == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "falta el parámetro nivel",
		})
		return
	}
	if unidad == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "falta el parámetro unidad",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"card":   "vision_comercial",
		"nivel":  nivel,
		"unidad": unidad,
		"text_resumen": fmt.Sprintf(
			"Visión comercial de %s (%s): primas emitidas 4,2 M€, variación interanual +3,1%%.",
			unidad, nivel),
		"secciones": map[string]any{
			"text_cartera":    "Cartera viva: 12.480 pólizas, retención del 91,4%.",
			"image_evolucion": "https://reports.example.com/charts/evolucion_primas.png",
		},
		"adjuntos": []any{
			map[string]any{
				"file_detalle": "https://reports.example.com/files/vision_comercial.xlsx",
			},
		},
	})
}

// handleActionCard serves the remaining cards with a generic payload
func handleActionCard(w http.ResponseWriter, r *http.Request) {
	card := chi.URLParam(r, "card")

	known := map[string]string{
		"siniestralidad": "Siniestralidad acumulada del 64,2%, por debajo del presupuesto anual.",
		"primas":         "Primas emitidas en el ejercicio: 48,7 M€ (+2,8% interanual).",
		"comisiones":     "Comisiones devengadas: 5,1 M€, con un ratio medio del 10,5%.",
		"fte":            "Plantilla equivalente: 312 FTE, estable respecto al trimestre anterior.",
		"pib":            "PIB trimestral: +0,6% intertrimestral, +2,4% interanual.",
		"poblacion":      "Población residente: 48,6 millones, +0,9% interanual.",
		"turismo":        "Llegadas de turistas internacionales: 8,3 millones en el mes.",
	}

	summary, ok := known[card]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"detail": fmt.Sprintf("action card desconocida: %s", card),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"card":         card,
		"text_resumen": summary,
		"image_grafico": fmt.Sprintf(
			"https://reports.example.com/charts/%s.png", card),
	})
}

// handleAutomationRun acknowledges a generic automation launch
func handleAutomationRun(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AutomationID string `json:"automation_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AutomationID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "se requiere automation_id",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"automation_id": body.AutomationID,
		"status":        "queued",
		"text_aviso":    fmt.Sprintf("Automatización %s encolada.", body.AutomationID),
	})
}

// handleContratosSLA is the dedicated intake for the SLA automation
func handleContratosSLA(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"automation_id": "contratos",
		"status":        "running",
		"text_aviso":    "Revisión de SLA de contratos en curso.",
	})
}

// handleUpload accepts multipart files for an automation intake
func handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "cuerpo multipart inválido",
		})
		return
	}

	// automation_id is optional, matching the client
	automationID := r.FormValue("automation_id")

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "no se adjuntó ningún archivo",
		})
		return
	}

	names := make([]string, len(files))
	for i, fh := range files {
		names[i] = fh.Filename
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"automation_id": automationID,
		"received":      len(files),
		"text_aviso": fmt.Sprintf("Recibidos %d archivos: %s",
			len(files), strings.Join(names, ", ")),
	})
}
