package models

import "time"

type (
	// PRContext contiene la información extraída de una Pull Request.
	// Se construye una vez por invocación a partir de la API y no se persiste.
	PRContext struct {
		Repo         string
		Number       int
		Title        string
		Description  string
		Author       string
		State        string
		CreatedAt    time.Time
		BaseBranch   string
		HeadBranch   string
		Labels       []string
		Additions    int
		Deletions    int
		ChangedFiles int
		Files        []ChangedFile
		Commits      []CommitInfo
	}

	// ChangedFile representa un archivo modificado en el PR con sus estadísticas.
	ChangedFile struct {
		Path      string
		Status    string
		Additions int
		Deletions int
		Patch     string
	}

	// CommitInfo representa un commit incluido en el PR.
	CommitInfo struct {
		SHA     string
		Message string
		Author  string
	}
)

// TotalChanges devuelve la cantidad de líneas tocadas por un archivo.
func (f ChangedFile) TotalChanges() int {
	return f.Additions + f.Deletions
}
