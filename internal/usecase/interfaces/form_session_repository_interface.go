package interfaces

import "buscador_cep/internal/domain/entities"

// IFormSessionRepository keeps live form sessions. Sessions are never
// persisted; a restart drops them.
type IFormSessionRepository interface {
	Save(s *entities.FormSession)
	Get(id string) (*entities.FormSession, bool)
	Delete(id string)
}
