package evaluationhandlers

import "net/http"

// Handlers defines the HTTP surface of the evaluation module.
type Handlers interface {
	HandleList(w http.ResponseWriter, r *http.Request)
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleGet(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
	HandleSetTeams(w http.ResponseWriter, r *http.Request)
	HandleSetGoldenPoint(w http.ResponseWriter, r *http.Request)
	HandleScore(w http.ResponseWriter, r *http.Request)
	HandleRecordStat(w http.ResponseWriter, r *http.Request)
	HandleManualPoint(w http.ResponseWriter, r *http.Request)
	HandleUndoLastStat(w http.ResponseWriter, r *http.Request)
	HandleSummary(w http.ResponseWriter, r *http.Request)
	HandleChart(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request)
}
