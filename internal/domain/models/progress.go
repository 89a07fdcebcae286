package models

// ProgressStage identifica el paso del pipeline que está por comenzar.
type ProgressStage string

const (
	StageFetchingPR        ProgressStage = "fetching_pr"
	StageGeneratingSummary ProgressStage = "generating_summary"
)

// ProgressEvent se emite antes de cada paso del pipeline para que la UI
// muestre el avance sin acoplarse al servicio. El callback es opcional.
type ProgressEvent struct {
	Stage    ProgressStage
	PRNumber int
	// Files trae los archivos del PR una vez que el fetch terminó. Vacío en
	// los eventos anteriores.
	Files []ChangedFile
}
