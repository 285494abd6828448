package option

import "time"

// CallOptions 单次调用选项
type CallOptions struct {
	// Limit 返回条数上限
	Limit *int
	// Since 起始时间
	Since *time.Time
	// Price 价格（限价单必填）
	Price *string
	// ClientOrderID 客户端订单ID
	ClientOrderID *string
}

// CallOption 调用选项函数类型
type CallOption func(*CallOptions)

// NewCallOptions 应用调用选项
func NewCallOptions(opts ...CallOption) *CallOptions {
	options := &CallOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLimit 设置返回条数上限
func WithLimit(limit int) CallOption {
	return func(opts *CallOptions) {
		opts.Limit = &limit
	}
}

// WithSince 设置起始时间
func WithSince(since time.Time) CallOption {
	return func(opts *CallOptions) {
		opts.Since = &since
	}
}

// WithPrice 设置价格
func WithPrice(price string) CallOption {
	return func(opts *CallOptions) {
		opts.Price = &price
	}
}

// WithClientOrderID 设置客户端订单ID
func WithClientOrderID(clientOrderID string) CallOption {
	return func(opts *CallOptions) {
		opts.ClientOrderID = &clientOrderID
	}
}
