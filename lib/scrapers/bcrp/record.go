package bcrp

// SeriesRecord is one discovered series. Field values are kept verbatim
// as published, dates included; normalization is left to consumers.
type SeriesRecord struct {
	Codigo              string
	NombreSerie         string
	FechaInicio         string
	FechaFin            string
	UltimaActualizacion string
	Categoria           string
	CategoriaUrl        string
	Periodicidad        Periodicity
}

// Catalog is the ordered collection of records from one harvest run, in
// page-then-table-then-row traversal order. Series listed under several
// categories appear once per listing; deduplication is the consumer's
// decision.
type Catalog []SeriesRecord
