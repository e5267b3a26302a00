package domain

import "time"

// DateRangeUnavailable é usado quando não há visitas para calcular o período
const DateRangeUnavailable = "N/A"

// TopStoresLimit é a quantidade de lojas destacadas no mapa
const TopStoresLimit = 5

// TopStoreColors é a paleta usada no ranking, na ordem das posições
var TopStoreColors = [TopStoresLimit]string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57"}

type Coordinate struct {
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	StoreName   string  `json:"store_name"`
	StoreID     string  `json:"store_id"`
	FullName    string  `json:"full_name"`
	VisitDate   string  `json:"tanggal"` // Formato yyyy-mm-dd
	AreaName    string  `json:"area_name"`
	AreaID      string  `json:"area_id"`
	AccountName string  `json:"account_name,omitempty"`
	IsTop5      bool    `json:"is_top_5"`
}

type StoreRank struct {
	StoreID    string  `json:"store_id"`
	StoreName  string  `json:"store_name"`
	VisitCount int     `json:"visit_count"`
	ColorIndex int     `json:"color_index"`
	Color      string  `json:"color"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	AreaName   string  `json:"area_name"`
	AreaID     string  `json:"area_id"`
}

type AreaSummary struct {
	AreaID   string `json:"area_id"`
	AreaName string `json:"area_name"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Bounds é o retângulo que envolve todas as coordenadas do dataset
type Bounds struct {
	North     float64 `json:"north"`
	South     float64 `json:"south"`
	East      float64 `json:"east"`
	West      float64 `json:"west"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}

type DatasetStats struct {
	TotalPoints int       `json:"total_points"`
	TotalStores int       `json:"total_stores"`
	TotalAreas  int       `json:"total_areas"`
	DateRange   DateRange `json:"date_range"`
	Bounds      *Bounds   `json:"bounds,omitempty"`
}

// ProcessedDataset é o resultado pronto para o mapa
type ProcessedDataset struct {
	Success     bool          `json:"success"`
	Coordinates []Coordinate  `json:"coordinates"`
	TopStores   []StoreRank   `json:"top_5_stores"`
	Areas       []AreaSummary `json:"areas"`
	Stats       DatasetStats  `json:"stats"`
}

// CurrentDataset é o dataset gerado pelo último upload de arquivo
type CurrentDataset struct {
	UploadID   string            `json:"upload_id"`
	UploadedAt time.Time         `json:"uploaded_at"`
	Dataset    *ProcessedDataset `json:"dataset"`
}

type MessageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
