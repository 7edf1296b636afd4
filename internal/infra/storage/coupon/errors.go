package coupon

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon.repository: coupon not found")

	// ErrDuplicateCode возвращается, когда купон с таким кодом уже существует
	ErrDuplicateCode = errors.New("coupon.repository: coupon code already exists")

	// ErrUsageExists возвращается, когда к бронированию уже применен купон
	ErrUsageExists = errors.New("coupon.repository: reservation already has a coupon")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("coupon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("coupon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("coupon.repository: failed to scan row")
)
