package entity

// Record representa un registro genérico del contenedor: un mapa de campos
// tal como viven en el archivo. Orders, reviews y favorites se manejan como
// payload opaco (el store no valida su esquema).
type Record map[string]interface{}

// Clone devuelve una copia superficial del registro; los slices anidados
// (ej. images) se copian un nivel para evitar aliasing entre snapshots.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		if s, ok := v.([]interface{}); ok {
			cp := make([]interface{}, len(s))
			copy(cp, s)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}
