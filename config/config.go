package config

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/motorlog/motorlog-api/models"
)

// Config holds the project config values
type Config struct {
	SpreadsheetID        string
	CredentialsFile      string
	BaseUrl              string
	Port                 string
	OperatorEmail        string
	OperatorPasswordHash string
	ReminderTo           string
	ReminderCron         string
	SendgridKey          string
}

// New sets up all config related services
func New() *Config {

	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		SpreadsheetID:        os.Getenv("SPREADSHEET_ID"),
		CredentialsFile:      os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		BaseUrl:              os.Getenv("BASE_URL"),
		Port:                 os.Getenv("PORT"),
		OperatorEmail:        os.Getenv("OPERATOR_EMAIL"),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		ReminderTo:           os.Getenv("REMINDER_TO"),
		ReminderCron:         os.Getenv("REMINDER_CRON"),
		SendgridKey:          os.Getenv("SENDGRID_API_KEY"),
	}

}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: err.Error()},
	})
	w.Write(b)
}
