package models

// FormField describes one input of a front-end form
type FormField struct {
	Name            string `json:"name"`
	Label           string `json:"label"`
	Type            string `json:"type"`
	Required        bool   `json:"required"`
	FetchValuesFrom string `json:"fetchValuesFrom,omitempty"`
}

// FormSchema is the field list of a named form
type FormSchema struct {
	Fields []FormField `json:"fields"`
}
