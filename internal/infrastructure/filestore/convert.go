package filestore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// toRecord serializa una entidad a Record vía sus tags JSON, que son los
// nombres de campo del contenedor.
func toRecord(v interface{}) (entity.Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serializar entidad: %w", err)
	}
	var rec entity.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("convertir entidad a record: %w", err)
	}
	return rec, nil
}

// fromRecord materializa un Record en la entidad tipada destino. Campos
// extra del registro se ignoran; campos con tipo incompatible (datos legados)
// no tumban la conversión completa.
func fromRecord(rec entity.Record, out interface{}) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar record: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("convertir record a entidad: %w", err)
	}
	return nil
}
