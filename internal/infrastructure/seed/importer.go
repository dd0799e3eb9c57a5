package seed

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// Result resumen de una importación.
type Result struct {
	Companies   int
	Obligations int
	Failed      int
}

// Importer carga un Document pasando cada registro por los casos de uso,
// de modo que se aplican las mismas validaciones que en la API.
type Importer struct {
	companies   *usecase.CompanyUseCase
	obligations *usecase.ObligationUseCase
	log         *logger.Logger
}

// NewImporter construye el importador.
func NewImporter(companies *usecase.CompanyUseCase, obligations *usecase.ObligationUseCase, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{companies: companies, obligations: obligations, log: log}
}

// Import crea cada empresa y luego sus obligaciones con el ID asignado.
// Un registro rechazado se cuenta en Failed y no detiene la carga; si la empresa
// falla, sus obligaciones se omiten. Solo devuelve error si ctx se cancela.
func (im *Importer) Import(ctx context.Context, doc *Document) (Result, error) {
	var res Result
	for _, rec := range doc.Companies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		company, err := im.companies.Create(ctx, dto.CompanyRequest{
			Name:    rec.Name,
			TaxID:   rec.TaxID,
			Address: rec.Address,
			Email:   rec.Email,
			Phone:   rec.Phone,
		})
		if err != nil {
			res.Failed += 1 + len(rec.Obligations)
			im.log.Warn().Err(err).Str("tax_id", rec.TaxID).Msg("empresa omitida")
			continue
		}
		res.Companies++

		for _, ob := range rec.Obligations {
			_, err := im.obligations.Create(ctx, dto.ObligationRequest{
				Name:        ob.Name,
				Periodicity: ob.Periodicity,
				CompanyID:   company.ID,
			})
			if err != nil {
				res.Failed++
				im.log.Warn().Err(err).Int64("company_id", company.ID).Str("obligation", ob.Name).Msg("obligación omitida")
				continue
			}
			res.Obligations++
		}
	}
	return res, nil
}
