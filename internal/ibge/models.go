package ibge

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/logging"
)

// stateResponse is one entry of the /estados payload.
// Other fields (id, regiao) are ignored.
type stateResponse struct {
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// districtResponse is one entry of the /estados/{UF}/distritos payload.
type districtResponse struct {
	Nome      string             `json:"nome"`
	Municipio *municipioResponse `json:"municipio"`
}

type municipioResponse struct {
	Nome         string                `json:"nome"`
	Microrregiao *microrregiaoResponse `json:"microrregiao"`
}

type microrregiaoResponse struct {
	Nome string `json:"nome"`
}

// toStates validates the payload and converts it to catalog states.
// Order is preserved; sorting is the caller's concern.
func toStates(entries []stateResponse) ([]catalog.State, error) {
	states := make([]catalog.State, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Sigla) == "" {
			return nil, fmt.Errorf("state %d: missing sigla", i)
		}
		if strings.TrimSpace(e.Nome) == "" {
			return nil, fmt.Errorf("state %d (%s): missing nome", i, e.Sigla)
		}
		states = append(states, catalog.State{Code: e.Sigla, Name: e.Nome})
	}
	return states, nil
}

// toCities validates the payload and converts it to catalog cities. A
// district without a name fails the whole payload. A district whose
// municipio or microrregiao is missing keeps a blank micro-region.
func toCities(entries []districtResponse) ([]catalog.City, error) {
	cities := make([]catalog.City, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Nome) == "" {
			return nil, fmt.Errorf("district %d: missing nome", i)
		}
		cities = append(cities, catalog.City{
			Name:            e.Nome,
			MicroregionName: microregionName(e),
		})
	}
	return cities, nil
}

// microregionName returns municipio.microrregiao.nome, or "" when any
// level is absent
func microregionName(e districtResponse) string {
	if e.Municipio == nil || e.Municipio.Microrregiao == nil || e.Municipio.Microrregiao.Nome == "" {
		logging.Warn("district without micro-region", zap.String("district", e.Nome))
		return ""
	}
	return e.Municipio.Microrregiao.Nome
}
