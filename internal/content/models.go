package content

// Document is the on-disk shape of the reference content.
// It is only used while loading; callers read content through a Store.
type Document struct {
	Version      int                `yaml:"version" json:"version"`
	Page         Page               `yaml:"page" json:"page"`
	Steps        []FlowStep         `yaml:"steps" json:"steps"`
	Details      map[int]StepDetail `yaml:"details" json:"details"`
	Fields       []DataField        `yaml:"fields" json:"fields"`
	Destinations []Destination      `yaml:"destinations" json:"destinations"`
	Images       []ScreenImage      `yaml:"images" json:"images"`
}

// Page holds the page-level texts: metadata plus the heading and
// introduction of each section.
type Page struct {
	Title               string `yaml:"title" json:"title"`
	Description         string `yaml:"description" json:"description"`
	FlowHeading         string `yaml:"flow_heading" json:"flowHeading"`
	FlowIntro           string `yaml:"flow_intro" json:"flowIntro"`
	DestinationsHeading string `yaml:"destinations_heading" json:"destinationsHeading"`
	DestinationsIntro   string `yaml:"destinations_intro" json:"destinationsIntro"`
	ScreensHeading      string `yaml:"screens_heading" json:"screensHeading"`
	ScreensIntro        string `yaml:"screens_intro" json:"screensIntro"`
	FieldsHeading       string `yaml:"fields_heading" json:"fieldsHeading"`
	FieldsIntro         string `yaml:"fields_intro" json:"fieldsIntro"`
}

// FlowStep is one card of the weighing flow diagram.
type FlowStep struct {
	Step        int    `yaml:"step" json:"step"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// StepDetail is what the detail popup shows for a step.
type StepDetail struct {
	Details    []string `yaml:"details" json:"details"`
	WhatToFill string   `yaml:"what_to_fill" json:"whatToFill"`
	ImageLabel string   `yaml:"image_label" json:"imageLabel"`
}

// DataField is one row of the field reference table.
type DataField struct {
	Field   string `yaml:"field" json:"field"`
	Where   string `yaml:"where" json:"where"`
	Meaning string `yaml:"meaning" json:"meaning"`
}

// PaymentMode is a labelled payment option of a destination.
type PaymentMode struct {
	Label string `yaml:"label" json:"label"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Destination is a system that receives saved weighing records.
// PaymentModes is optional; a nil or empty list means the destination
// has no payment section at all.
type Destination struct {
	ID           string        `yaml:"id" json:"id"`
	Title        string        `yaml:"title" json:"title"`
	Description  string        `yaml:"description" json:"description"`
	Icon         string        `yaml:"icon" json:"icon"`
	Uses         []string      `yaml:"uses" json:"uses"`
	PaymentModes []PaymentMode `yaml:"payment_modes,omitempty" json:"paymentModes,omitempty"`
}

// HasPaymentModes reports whether the payment section should be shown.
func (d Destination) HasPaymentModes() bool {
	return len(d.PaymentModes) > 0
}

// ScreenImage is a screenshot of the weighing software.
type ScreenImage struct {
	Src       string      `yaml:"src" json:"src"`
	Label     string      `yaml:"label" json:"label"`
	Highlight string      `yaml:"highlight" json:"highlight"`
	Data      *ScreenData `yaml:"data_from_screen,omitempty" json:"dataFromScreen,omitempty"`
}

// ScreenData is a weighing record as read off a screenshot.
// Values are display strings and are never reformatted.
type ScreenData struct {
	SrNo           string `yaml:"sr_no" json:"srNo"`
	VehicleNo      string `yaml:"vehicle_no" json:"vehicleNo"`
	DeliveryNoteNo string `yaml:"delivery_note_no" json:"deliveryNoteNo"`
	PartyCode      string `yaml:"party_code" json:"partyCode"`
	PartyName      string `yaml:"party_name" json:"partyName"`
	ProductCode    string `yaml:"product_code" json:"productCode"`
	ProductName    string `yaml:"product_name" json:"productName"`
	TransCode      string `yaml:"trans_code" json:"transCode"`
	TransName      string `yaml:"trans_name" json:"transName"`
	FirstWeight    string `yaml:"first_weight" json:"firstWeight"`
	SecondWeight   string `yaml:"second_weight" json:"secondWeight"`
	NetWeight      string `yaml:"net_weight" json:"netWeight"`
	FirstDateTime  string `yaml:"first_date_time" json:"firstDateTime"`
	SecondDateTime string `yaml:"second_date_time" json:"secondDateTime"`
	Quantity       string `yaml:"quantity" json:"quantity"`
	RatePerTon     string `yaml:"rate_per_ton" json:"ratePerTon"`
	Amount         string `yaml:"amount" json:"amount"`
	Comments       string `yaml:"comments" json:"comments"`
	Status         string `yaml:"status" json:"status"`
	FlowNote       string `yaml:"flow_note" json:"flowNote"`
}

// LabeledValue is a single label/value pair of a ScreenData record.
type LabeledValue struct {
	Key   string
	Label string
	Value string
}

// Fields returns the record in display order.
func (d ScreenData) Fields() []LabeledValue {
	return []LabeledValue{
		{"srNo", "Sr No", d.SrNo},
		{"vehicleNo", "Vehicle No", d.VehicleNo},
		{"deliveryNoteNo", "Delivery Note No", d.DeliveryNoteNo},
		{"partyCode", "Party Code", d.PartyCode},
		{"partyName", "Party Name", d.PartyName},
		{"productCode", "Product Code", d.ProductCode},
		{"productName", "Product Name", d.ProductName},
		{"transCode", "Trans. Code", d.TransCode},
		{"transName", "Trans. Name", d.TransName},
		{"firstWeight", "First Weight", d.FirstWeight},
		{"secondWeight", "2nd Weight", d.SecondWeight},
		{"netWeight", "Net Weight", d.NetWeight},
		{"firstDateTime", "First Date/Time", d.FirstDateTime},
		{"secondDateTime", "2nd Date/Time", d.SecondDateTime},
		{"quantity", "Quantity", d.Quantity},
		{"ratePerTon", "Rate per Ton", d.RatePerTon},
		{"amount", "Amount", d.Amount},
		{"comments", "Comments", d.Comments},
		{"status", "Status", d.Status},
		{"flowNote", "Flow note", d.FlowNote},
	}
}
