package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ledgerkeep/walletd/internal/api/middleware"
)

const maxBodyBytes = 1 << 20

func UserIDFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(middleware.CtxUserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// requireWalletOwner resolves the authenticated wallet owner from the
// request context, answering 401 itself when there is none.
func requireWalletOwner(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		slog.Warn(
			"wallet request without owner in context",
			slog.String("path", r.URL.Path),
		)
		http.Error(
			w,
			http.StatusText(http.StatusUnauthorized),
			http.StatusUnauthorized,
		)
		return 0, false
	}

	return userID, true
}

// ValidateParseJSONRequest decodes a JSON request body into data, writing
// the error response itself. Callers must stop when it reports false.
func ValidateParseJSONRequest(
	w http.ResponseWriter,
	r *http.Request,
	data any,
) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		slog.Warn(
			"wallet request with unsupported content type",
			slog.String("content_type", ct),
		)
		http.Error(w, "wrong content type", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		var mberr *http.MaxBytesError
		if errors.As(err, &mberr) {
			http.Error(
				w,
				"request body too large",
				http.StatusRequestEntityTooLarge,
			)
			return false
		}
		slog.Warn("undecodable wallet request", slog.Any("error", err))
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	if dec.More() {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	return true
}

// writeJSON marshals v and answers with it; failures end up as bare 500s
// since nothing useful can be said to the caller at that point.
func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal response", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}
