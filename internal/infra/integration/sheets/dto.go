package sheets

type appendRequest struct {
	Values [][]string `json:"values"`
}

type appendResponse struct {
	Updates struct {
		UpdatedRows int `json:"updatedRows"`
	} `json:"updates"`
}

type valueRange struct {
	Range  string          `json:"range"`
	Values [][]interface{} `json:"values"`
}
