package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/handler/http/response"
	"github.com/c-senju/ponto-fazenda/internal/pkg/evo"
	"github.com/gorilla/websocket"
)

type DeviceHandler interface {
	IClockCData(w http.ResponseWriter, r *http.Request)
	EvoWebhook(w http.ResponseWriter, r *http.Request)
	EvoWebsocket(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	deviceService device.Service
	upgrader      websocket.Upgrader
}

func NewDeviceHandler(deviceService device.Service) DeviceHandler {
	return &deviceHandlerImpl{
		deviceService: deviceService,
		upgrader: websocket.Upgrader{
			// Terminals send no Origin header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// IClockCData implements DeviceHandler. ZKTeco clocks push tab-separated
// punch lines here and re-send the batch until they read back "OK".
func (h *deviceHandlerImpl) IClockCData(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		// Handshake probe from the device.
		w.Write([]byte("OK"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Failed to read clock upload", "error", err)
		w.Write([]byte("ERROR"))
		return
	}

	if _, err := h.deviceService.IngestClockData(r.Context(), string(body)); err != nil {
		slog.Error("Failed to store clock upload", "error", err)
		w.Write([]byte("ERROR"))
		return
	}

	w.Write([]byte("OK"))
}

// EvoWebhook implements DeviceHandler. Every reply is HTTP 200: a non-200
// status makes the terminal re-send the same payload indefinitely.
func (h *deviceHandlerImpl) EvoWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeDeviceJSON(w, map[string]any{"ok": true})
		return
	}

	var msg evo.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		slog.Warn("EVO webhook carried invalid JSON", "error", err)
		writeDeviceJSON(w, map[string]any{"status": "error", "message": "Invalid JSON"})
		return
	}

	writeDeviceJSON(w, h.handleEvoMessage(r, msg))
}

// EvoWebsocket implements DeviceHandler. Newer EVO firmware keeps a
// websocket open and sends the same frames the HTTP webhook receives.
func (h *deviceHandlerImpl) EvoWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade EVO websocket", "error", err)
		return
	}
	defer conn.Close()

	for {
		var msg evo.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("EVO websocket closed", "error", err)
			}
			return
		}

		if err := conn.WriteJSON(h.handleEvoMessage(r, msg)); err != nil {
			slog.Warn("Failed to write EVO websocket reply", "error", err)
			return
		}
	}
}

// handleEvoMessage dispatches one EVO frame and builds the device reply.
func (h *deviceHandlerImpl) handleEvoMessage(r *http.Request, msg evo.Message) any {
	ctx := r.Context()

	if msg.SN != "" {
		if err := h.deviceService.Heartbeat(ctx, msg.SN, time.Now()); err != nil {
			slog.Error("Failed to record EVO heartbeat", "sn", msg.SN, "error", err)
		}
	}

	switch {
	case msg.Cmd == "reg":
		var deviceTime string
		if msg.DevInfo != nil {
			deviceTime = msg.DevInfo.Time
		}
		return evo.NewRegResponse(deviceTime)

	case len(msg.Records) > 0:
		if _, err := h.deviceService.IngestEvoRecords(ctx, msg.SN, msg.Records); err != nil {
			slog.Error("Failed to store EVO records", "sn", msg.SN, "error", err)
			return map[string]any{"status": "error", "message": "Database error"}
		}
		return map[string]any{"status": "ok"}

	default:
		slog.Info("EVO frame carried no command or records", "sn", msg.SN)
		return map[string]any{"status": "ok", "message": "No action taken"}
	}
}

// Status implements DeviceHandler.
func (h *deviceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.deviceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// writeDeviceJSON replies with the exact payload the terminal expects,
// outside the API response envelope.
func writeDeviceJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode device reply", "error", err)
	}
}
