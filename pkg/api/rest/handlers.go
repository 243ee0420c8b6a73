package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	pb "github.com/therealutkarshpriyadarshi/vector/pkg/api/grpc/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler translates the JSON vector routes onto the gRPC VectorDB service.
type Handler struct {
	client pb.VectorDBClient
}

// NewHandler creates a new REST API handler
func NewHandler(client pb.VectorDBClient) *Handler {
	return &Handler{
		client: client,
	}
}

// httpStatusFromGRPC maps a gRPC call error to the HTTP status the JSON
// surface reports, so e.g. an Unimplemented vector deletion surfaces as 501
// rather than a generic 500.
func httpStatusFromGRPC(err error) int {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HealthCheck handles GET /v1/health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.client.HealthCheck(r.Context(), &pb.HealthCheckRequest{})
	if err != nil {
		writeError(w, fmt.Sprintf("Health check failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// GetStats handles GET /v1/stats and GET /v1/stats/{namespace}
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/stats")
	namespace := strings.TrimPrefix(path, "/")

	req := &pb.StatsRequest{}
	if namespace != "" {
		req.Namespace = &namespace
	}

	resp, err := h.client.GetStats(r.Context(), req)
	if err != nil {
		writeError(w, fmt.Sprintf("Failed to get stats: %v", err), httpStatusFromGRPC(err))
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// Insert handles POST /v1/vectors
func (h *Handler) Insert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pb.InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.client.Insert(r.Context(), &req)
	if err != nil {
		writeError(w, fmt.Sprintf("Insert failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	if !resp.Success {
		msg := "Insert failed"
		if resp.Error != nil {
			msg = *resp.Error
		}
		writeError(w, msg, http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusCreated)
}

// Search handles POST /v1/vectors/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pb.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.client.Search(r.Context(), &req)
	if err != nil {
		writeError(w, fmt.Sprintf("Search failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	if resp.Error != nil && *resp.Error != "" {
		writeError(w, *resp.Error, http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// HybridSearch handles POST /v1/vectors/hybrid-search
func (h *Handler) HybridSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pb.HybridSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.client.HybridSearch(r.Context(), &req)
	if err != nil {
		writeError(w, fmt.Sprintf("Hybrid search failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	if resp.Error != nil && *resp.Error != "" {
		writeError(w, *resp.Error, http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// Delete handles DELETE /v1/vectors/{namespace}/{id} and POST
// /v1/vectors/delete. Vector-level deletion is not supported by the
// proximity graph, so the backend answers Unimplemented and this surfaces
// as 501.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req pb.DeleteRequest

	switch r.Method {
	case http.MethodDelete:
		// URL format: /v1/vectors/{namespace}/{id}
		path := strings.TrimPrefix(r.URL.Path, "/v1/vectors/")
		parts := strings.SplitN(path, "/", 2)

		if len(parts) != 2 {
			writeError(w, "Invalid URL format, expected /v1/vectors/{namespace}/{id}", http.StatusBadRequest)
			return
		}

		req.Namespace = parts[0]
		req.Selector = &pb.DeleteRequest_Id{Id: parts[1]}

	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}

	default:
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.client.Delete(r.Context(), &req)
	if err != nil {
		writeError(w, fmt.Sprintf("Delete failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	if !resp.Success {
		msg := "Delete failed"
		if resp.Error != nil {
			msg = *resp.Error
		}
		writeError(w, msg, http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// Update handles PUT/PATCH /v1/vectors/{namespace}/{id}: metadata and text
// only, since vector payloads are content-addressed and immutable.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/vectors/")
	parts := strings.SplitN(path, "/", 2)

	if len(parts) != 2 {
		writeError(w, "Invalid URL format, expected /v1/vectors/{namespace}/{id}", http.StatusBadRequest)
		return
	}

	var req pb.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// The URL is authoritative for the target, not the body.
	req.Namespace = parts[0]
	req.Id = parts[1]

	resp, err := h.client.Update(r.Context(), &req)
	if err != nil {
		writeError(w, fmt.Sprintf("Update failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	if !resp.Success {
		msg := "Update failed"
		if resp.Error != nil {
			msg = *resp.Error
		}
		writeError(w, msg, http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp, http.StatusOK)
}

// BatchInsert handles POST /v1/vectors/batch, forwarding the JSON array as
// one client-side stream (one transaction on the backend).
func (h *Handler) BatchInsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var requests []pb.InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&requests); err != nil {
		writeError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	stream, err := h.client.BatchInsert(r.Context())
	if err != nil {
		writeError(w, fmt.Sprintf("Failed to create batch insert stream: %v", err), httpStatusFromGRPC(err))
		return
	}

	for i := range requests {
		if err := stream.Send(&requests[i]); err != nil {
			writeError(w, fmt.Sprintf("Failed to send batch request: %v", err), httpStatusFromGRPC(err))
			return
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		writeError(w, fmt.Sprintf("Batch insert failed: %v", err), httpStatusFromGRPC(err))
		return
	}

	writeJSON(w, resp, http.StatusCreated)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  message,
		"status": statusCode,
	})
}

// ServeDocs serves the OpenAPI spec file
func ServeDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		writeError(w, "OpenAPI spec not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// ServeSwaggerUI serves the Swagger UI HTML page
func ServeSwaggerUI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html := `<!DOCTYPE html>
<html>
<head>
    <title>Vector DB API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: "/docs/openapi.yaml",
                dom_id: '#swagger-ui',
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.SwaggerUIStandalonePreset
                ],
                layout: "BaseLayout"
            });
        };
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
