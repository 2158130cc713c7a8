package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedroganco/sanum/internal/domain"
)

const (
	msgNoFile         = "Nenhum ficheiro enviado"
	msgPDFOnly        = "Apenas ficheiros PDF são aceites"
	msgUnreadablePDF  = "Não foi possível extrair texto do PDF. Verifica se o PDF não está protegido ou é scan."
	msgParseFailed    = "Erro interno ao processar PDF"
	msgNoReports      = "Nenhum relatório fornecido"
	msgInvalidSex     = "Sexo do paciente inválido (usa M ou F)"
	msgAnalysisFailed = "Erro interno ao gerar análise"
	msgModelInvalid   = "A resposta do modelo não pôde ser interpretada. Tenta novamente."
	msgModelOffline   = "Serviço de análise temporariamente indisponível. Tenta novamente mais tarde."
	pdfContentType    = "application/pdf"
	bytesPerMegabyte  = 1 << 20
)

type analyzeReportsRequest struct {
	Reports    []*domain.Report `json:"reports"`
	PatientAge *int             `json:"patientAge"`
	PatientSex *string          `json:"patientSex"`
}

func (s *Server) handleParse(c *gin.Context) {
	maxSize := s.config.Upload.MaxFileSize
	tooLarge := fmt.Sprintf("Ficheiro demasiado grande (máx. %dMB)", maxSize/bytesPerMegabyte)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.fail(c, domain.ErrFileTooLarge, tooLarge, err)
			return
		}
		s.fail(c, domain.ErrInvalidInput, msgNoFile, err)
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != pdfContentType {
		s.fail(c, domain.ErrInvalidFileType, msgPDFOnly, nil)
		return
	}
	if header.Size > maxSize {
		s.fail(c, domain.ErrFileTooLarge, tooLarge, nil)
		return
	}

	result, err := s.deps.Reports.Parse(c.Request.Context(), file)
	if err != nil {
		switch code, isModel := modelFailureCode(err); {
		case errors.Is(err, domain.ErrTextTooShort):
			s.fail(c, domain.ErrUnreadablePDF, msgUnreadablePDF, err)
		case isModel && code == domain.ErrServiceUnavailable:
			s.fail(c, code, msgModelOffline, err)
		case isModel:
			s.fail(c, code, msgModelInvalid, err)
		default:
			s.fail(c, domain.ErrInternalServer, msgParseFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"report":           result.Report,
		"extractionMethod": result.ExtractionMethod,
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeReportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, domain.ErrInvalidInput, msgNoReports, err)
		return
	}
	if len(req.Reports) == 0 || req.Reports[0] == nil {
		s.fail(c, domain.ErrInvalidInput, msgNoReports, nil)
		return
	}

	var sex *domain.Sex
	if req.PatientSex != nil && *req.PatientSex != "" {
		parsed, err := domain.ParseSex(*req.PatientSex)
		if err != nil {
			s.fail(c, domain.ErrInvalidInput, msgInvalidSex, err)
			return
		}
		sex = &parsed
	}

	// Only the first report is analyzed.
	analysis, err := s.deps.Reports.Analyze(c.Request.Context(), req.Reports[0], req.PatientAge, sex)
	if err != nil {
		switch code, isModel := modelFailureCode(err); {
		case isModel && code == domain.ErrServiceUnavailable:
			s.fail(c, code, msgModelOffline, err)
		case isModel:
			s.fail(c, code, msgModelInvalid, err)
		default:
			s.fail(c, domain.ErrInternalServer, msgAnalysisFailed, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}
