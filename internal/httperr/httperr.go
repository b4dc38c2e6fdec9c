package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"invalid_id":             "Identificador inválido.",
	"invalid_date":           "Data inválida.",
	"invalid_tables":         "Nenhuma tabela válida para acompanhar.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"invalid_time_window":    "Horário inicial deve ser anterior ao final.",
	"invalid_weekday":        "Dia da semana inválido.",
	"invalid_status":         "Status inválido.",
	"invalid_format":         "Formato de exportação inválido.",
	"invalid_image":          "Imagem inválida.",
	"invalid_email_domain":   "O domínio do e-mail informado não parece ser válido.",
	"missing_client":         "Informe o cliente.",
	"ambiguous_professional": "Mais de um profissional com este nome.",
	"professional_not_found": "Profissional não encontrado.",
	"client_not_found":       "Cliente não encontrado.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"notification_not_found": "Notificação não encontrada.",
	"organization_not_found": "Organização não encontrada.",
	"client_in_use":          "Cliente possui agendamentos e não pode ser removido.",
	"email_already_exists":   "E-mail já cadastrado.",
	"slug_already_exists":    "Já existe uma organização com este nome.",
	"invalid_credentials":    "E-mail ou senha inválidos.",
	"missing_token":          "Sessão não informada.",
	"invalid_token":          "Sessão inválida ou expirada.",
	"invalid_refresh":        "Sessão expirada. Entre novamente.",
	"no_membership":          "Usuário sem organização vinculada.",
	"storage_disabled":       "Armazenamento de fotos não configurado.",
	"storage_error":          "Erro ao acessar os dados. Tente novamente.",
	"export_failed":          "Erro ao gerar o arquivo.",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Message devolve o texto padrão para um código.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Não foi possível concluir a operação."
}

// FromError escreve a resposta de qualquer erro vindo de use case ou
// repositório. Erros fora da taxonomia viram storage_error (500).
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Status(), be.Code, Message(be.Code))
		return
	}

	switch {
	case IsRecordNotFound(err):
		NotFound(c, "not_found", "Registro não encontrado.")
		return
	case IsUniqueViolation(err):
		Write(c, http.StatusConflict, "already_exists", "Registro já existe.")
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	Internal(c, "storage_error", Message("storage_error"))
}

// Abort é FromError para middlewares.
func Abort(c *gin.Context, err error) {
	FromError(c, err)
	c.Abort()
}
