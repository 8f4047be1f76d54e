package dto

// ScanChar un carácter del flujo de entrada con su desplazamiento relativo
// en milisegundos desde el primer carácter.
type ScanChar struct {
	Char     string `json:"char"`
	OffsetMs int64  `json:"offset_ms"`
}

// ScanEventsRequest secuencia de teclas capturada en el campo de código de barras.
type ScanEventsRequest struct {
	Events []ScanChar `json:"events"`
}

// ScanResultResponse clasificación del flujo y, si el código completó y
// coincide con un producto, el producto resuelto.
type ScanResultResponse struct {
	Complete bool             `json:"complete"`
	Burst    bool             `json:"burst"` // velocidad de escáner (<30ms entre teclas)
	Code     string           `json:"code,omitempty"`
	Product  *ProductResponse `json:"product,omitempty"`
}

// SettingResponse preferencia clave/valor.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PutSettingRequest actualización de una preferencia.
type PutSettingRequest struct {
	Value string `json:"value"`
}
