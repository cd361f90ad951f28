package gateway

import "portal-gateway/internal/domain"

// Remote function modules exposed by the ERP for the customer portal. The
// function name is also the request container element and, prefixed with the
// protocol namespace, the SOAPAction value.
var (
	OpLogin           = domain.Operation{Name: "ZFM_CUST_PORTAL", Path: "/sap/bc/srt/scs/sap/zsd_login_psr"}
	OpCustomerDetails = domain.Operation{Name: "ZFM_CUST_DETAILS", Path: "/sap/bc/srt/scs/sap/zsd_cus_det_psr"}
	OpInquiry         = domain.Operation{Name: "ZFM_INQUIRY_PSR", Path: "/sap/bc/srt/scs/sap/zfm_inquiry_psr"}
	OpSalesOrders     = domain.Operation{Name: "ZFM_SALESORDER_PSR", Path: "/sap/bc/srt/scs/sap/zfm_salesorder_psr"}
	OpDeliveries      = domain.Operation{Name: "ZFM_LIST_DELIVERY_PSR", Path: "/sap/bc/srt/scs/sap/zfm_list_delivery_psr"}
	OpInvoices        = domain.Operation{Name: "ZFM_INVOICE_PSR", Path: "/sap/bc/srt/scs/sap/zsd_invoice_psr"}
	OpInvoiceForm     = domain.Operation{Name: "ZFM_INVOICE_FORM_PSR", Path: "/sap/bc/srt/scs/sap/zsd_invoice_form_psr"}
	OpPaymentAging    = domain.Operation{Name: "ZFM_PAYMENT_AGING_PSR", Path: "/sap/bc/srt/scs/sap/zfm_payment_aging_psr"}
	OpCreditDebit     = domain.Operation{Name: "ZFM_CREDIT_DEBIT_MEMO_PSR", Path: "/sap/bc/srt/scs/sap/zfm_credit_debit_memo_psr"}
	OpOverallSales    = domain.Operation{Name: "ZFM_OVERALL_SALES_PSR", Path: "/sap/bc/srt/scs/sap/zfm_overall_sales_psr"}
)
