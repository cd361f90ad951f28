package domain

// Operation identifies one remote function of the ERP service: the RFC
// function name doubles as the request container element, and with the
// protocol namespace it forms the SOAPAction value.
type Operation struct {
	// Name is the remote function module name, e.g. ZFM_INQUIRY_PSR.
	Name string
	// Path is the service path on the ERP host for this function.
	Path string
}

// ResponseElement is the element wrapping the operation's result fields.
func (op Operation) ResponseElement() string {
	return op.Name + "Response"
}

// Document is a named binary payload decoded from a remote response.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}
