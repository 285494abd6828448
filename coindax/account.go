package coindax

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lemconn/cdxlink/exchange"
	"github.com/lemconn/cdxlink/model"
	"github.com/lemconn/cdxlink/option"
	"github.com/lemconn/cdxlink/types"
)

// FetchDeposits 获取充值记录
func (c *Coindax) FetchDeposits(ctx context.Context, currency string, opts ...option.CallOption) (model.Transactions, error) {
	return c.fetchTransactions(ctx, "deposit/history", model.TransactionTypeDeposit, currency, opts...)
}

// FetchWithdrawals 获取提现记录
func (c *Coindax) FetchWithdrawals(ctx context.Context, currency string, opts ...option.CallOption) (model.Transactions, error) {
	return c.fetchTransactions(ctx, "withdraw/history", model.TransactionTypeWithdrawal, currency, opts...)
}

// fetchTransactions 拉取并解析资金流水
func (c *Coindax) fetchTransactions(ctx context.Context, path string, txType model.TransactionType, currency string, opts ...option.CallOption) (model.Transactions, error) {
	callOpts := option.NewCallOptions(opts...)
	params := types.NewExValues()
	if currency != "" {
		params.SetQuery("currency", strings.ToUpper(currency))
	}
	if callOpts.Limit != nil {
		params.SetQuery("limit", *callOpts.Limit)
	}
	if callOpts.Since != nil && !callOpts.Since.IsZero() {
		params.SetQuery("from", callOpts.Since.UnixMilli())
	}

	data, err := c.accountPost(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode transactions: "+err.Error(), data)
	}

	transactions := make(model.Transactions, 0, len(items))
	for _, item := range items {
		transaction, err := parseTransaction(item, txType)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

// parseTransactionStatus 资金流水状态映射
func parseTransactionStatus(status string) model.TransactionStatus {
	switch strings.ToLower(status) {
	case "pending", "confirming", "processing":
		return model.TransactionStatusPending
	case "done", "success":
		return model.TransactionStatusOK
	case "cancelled", "canceled", "rejected":
		return model.TransactionStatusCanceled
	default:
		return model.TransactionStatus(strings.ToLower(status))
	}
}

// parseTransaction 解析单条资金流水
// 手续费仅在非零时挂载
func parseTransaction(data json.RawMessage, txType model.TransactionType) (*model.Transaction, error) {
	var raw rawTransaction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "decode transaction: "+err.Error(), data)
	}
	if raw.ID == "" {
		return nil, exchange.NewAPIError(exchange.KindBadResponse, "", "transaction missing id", data)
	}

	var info map[string]interface{}
	_ = json.Unmarshal(data, &info)

	transaction := &model.Transaction{
		ID:        raw.ID,
		Currency:  strings.ToUpper(raw.Currency),
		Amount:    raw.Amount,
		Address:   raw.Address,
		Tag:       raw.Tag,
		Status:    parseTransactionStatus(raw.Status),
		Type:      txType,
		TxID:      raw.TxID,
		Timestamp: raw.Time,
		Info:      info,
	}

	if raw.Fee.Present() && !raw.Fee.IsZero() {
		transaction.Fee = &model.Fee{
			Currency: transaction.Currency,
			Cost:     raw.Fee.Decimal,
		}
	}

	return transaction, nil
}
