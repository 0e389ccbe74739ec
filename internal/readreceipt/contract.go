//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package readreceipt

import "context"

type MessagingClient interface {
	MarkAsRead(ctx context.Context, messageIDs []string) error
}

type ReadStateStore interface {
	MarkRead(ids []string)
}
