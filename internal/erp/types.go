package erp

// Records are server-owned; the client holds transient copies keyed by the
// server-assigned id. Soft-deleted rows come back with is_active=false.

type Vendor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	GSTNo       string `json:"gstno"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type VendorPayload struct {
	Name        string `json:"name" validate:"required"`
	GSTNo       string `json:"gstno" validate:"required,gstin"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,mobile"`
}

type HSN struct {
	ID        int     `json:"id"`
	HSNNo     string  `json:"hsn_no"`
	GSTRate   float64 `json:"gst_rate"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type HSNPayload struct {
	HSNNo   string  `json:"hsn_no" validate:"required,min=2,max=8,numeric"`
	GSTRate float64 `json:"gst_rate" validate:"min=0,max=100"`
}

// HSNNumber is the slim shape served by /api/hsn-master/numbers for
// dropdown population.
type HSNNumber struct {
	ID    int     `json:"id"`
	HSNNo string  `json:"hsn_no"`
	GST   float64 `json:"GST"`
}

type Category struct {
	ID           int    `json:"id"`
	CategoryName string `json:"category_name"`
	Prefix       string `json:"prefix"`
	HSNMasterID  *int   `json:"hsn_master_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	HSNNo        string `json:"hsn_no,omitempty"`
}

type CategoryPayload struct {
	CategoryName string `json:"category_name" validate:"required"`
	Prefix       string `json:"prefix" validate:"required,max=5"`
	HSNMasterID  *int   `json:"hsn_master_id,omitempty"`
}

// CategoryWithHSN is the joined shape served by /api/category-master/all.
type CategoryWithHSN struct {
	ID           int     `json:"id"`
	CategoryName string  `json:"category_name"`
	Prefix       string  `json:"prefix"`
	HSNMasterID  int     `json:"hsn_master_id"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	HSNID        int     `json:"hsn_id"`
	HSNNo        string  `json:"hsn_no"`
	GST          float64 `json:"GST"`
}

type Customer struct {
	ID            int    `json:"id"`
	ClientName    string `json:"client_name"`
	Email         string `json:"email"`
	MobileNo      string `json:"mobile_no"`
	Address       string `json:"address"`
	Pincode       string `json:"pincode"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	PANNo         string `json:"pan_no"`
	GSTNo         string `json:"gst_no"`
	AadhaarNumber string `json:"aadhaar_number"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type CustomerPayload struct {
	ClientName    string `json:"client_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	MobileNo      string `json:"mobile_no" validate:"required,mobile"`
	Address       string `json:"address" validate:"required"`
	Pincode       string `json:"pincode" validate:"required,pincode"`
	Country       string `json:"country" validate:"required"`
	State         string `json:"state" validate:"required"`
	City          string `json:"city" validate:"required"`
	PANNo         string `json:"pan_no" validate:"required,pan"`
	GSTNo         string `json:"gst_no" validate:"required,gstin"`
	AadhaarNumber string `json:"aadhaar_number" validate:"required,aadhaar"`
}

type Product struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ProductCode  string `json:"product_code"`
	CategoryID   *int   `json:"category_id,omitempty"`
	MinStock     int    `json:"min_stock"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	CategoryName string `json:"category_name,omitempty"`
}

type ProductPayload struct {
	Name        string `json:"name" validate:"required"`
	ProductCode string `json:"product_code" validate:"required"`
	Description string `json:"description,omitempty"`
	CategoryID  *int   `json:"category_id,omitempty"`
	MinStock    int    `json:"min_stock,omitempty" validate:"min=0"`
}

// ProductDetail is the enriched shape served by
// /api/product-master/all-details for stock entry screens.
type ProductDetail struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	ProductCode  string  `json:"product_code"`
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	HSNNo        string  `json:"hsn_no"`
	GST          float64 `json:"GST"`
}

type ProductStock struct {
	ID                 int     `json:"id"`
	Barcode            string  `json:"barcode"`
	ProductID          int     `json:"product_id"`
	ProductName        string  `json:"product_name"`
	Particulars        string  `json:"particulars"`
	PurchasePrice      float64 `json:"purchase_price"`
	Quantity           float64 `json:"quantity"`
	SalesPricePerPiece float64 `json:"sales_price_per_piece"`
	TotalSalesPrice    float64 `json:"total_sales_price"`
	CreatedAt          string  `json:"created_at"`
}

type ProductStockPayload struct {
	Barcode            string  `json:"barcode" validate:"required"`
	ProductID          int     `json:"product_id" validate:"required,gt=0"`
	Particulars        string  `json:"particulars"`
	PurchasePrice      float64 `json:"purchase_price" validate:"min=0"`
	Quantity           float64 `json:"quantity" validate:"gt=0"`
	SalesPricePerPiece float64 `json:"sales_price_per_piece" validate:"min=0"`
	TotalSalesPrice    float64 `json:"total_sales_price" validate:"min=0"`
}

// ProductStockUpdate carries only the fields the backend allows to change
// on an existing stock lot; nil fields are left untouched.
type ProductStockUpdate struct {
	Quantity           *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	SalesPricePerPiece *float64 `json:"sales_price_per_piece,omitempty" validate:"omitempty,min=0"`
	TotalSalesPrice    *float64 `json:"total_sales_price,omitempty" validate:"omitempty,min=0"`
	Particulars        *string  `json:"particulars,omitempty"`
}

type BarcodeGeneration struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	NextBarcode string `json:"next_barcode"`
}

type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	TotalCustomers int     `json:"total_customers"`
	TotalProducts  int     `json:"total_products"`
}

// MasterDashboard is the record-count summary for the master data screens.
type MasterDashboard struct {
	TotalVendors    int `json:"total_vendors"`
	TotalCustomers  int `json:"total_customers"`
	TotalCategories int `json:"total_categories"`
	TotalHSNCodes   int `json:"total_hsn_codes"`
}

// Admin is the profile record the login endpoint returns at the response
// root alongside the token.
type Admin struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no"`
	GSTNo     string `json:"gstno"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
