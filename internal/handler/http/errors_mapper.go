package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-dashboard/internal/app"
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
)

var errorStatusMap = map[error]int{
	devserver.ErrEmailTaken:          http.StatusBadRequest,
	devserver.ErrInvalidUserData:     http.StatusUnprocessableEntity,
	devserver.ErrWrongCredentials:    http.StatusUnauthorized,
	devserver.ErrInvalidToken:        http.StatusUnauthorized,
	devserver.ErrUserNotFound:        http.StatusNotFound,
	devserver.ErrCalculationNotFound: http.StatusNotFound,
	devserver.ErrNotCSV:              http.StatusBadRequest,
	devserver.ErrInvalidDemandFile:   http.StatusBadRequest,
	devserver.ErrNotEnoughDemandData: http.StatusBadRequest,
	devserver.ErrInvalidParameters:   http.StatusBadRequest,
	ErrInvalidCalculationID:          http.StatusUnprocessableEntity,
}

// validationErrors are reported with an "Erro de validação: " prefix.
var validationErrors = []error{
	devserver.ErrInvalidDemandFile,
	devserver.ErrNotEnoughDemandData,
	devserver.ErrInvalidParameters,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError is the text sent to the client for err.
func detailFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return app.MsgValidationPrefix + err.Error()
		}
	}
	return err.Error()
}

// writeError logs err and answers with its status and a {"detail"} body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteDetail(w, detailFromError(err, status), status)
}
