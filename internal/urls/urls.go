package urls

// Documentation URLs for the data source

// LocalitiesAPIDocs documents the IBGE localities API, including the
// states and districts endpoints the client calls.
const LocalitiesAPIDocs = "https://servicodados.ibge.gov.br/api/docs/localidades"
