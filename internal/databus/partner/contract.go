//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package partner

type PartnerCacheUpdater interface {
	UpdateName(partnerID, name string)
	UpdateAvatar(partnerID, avatarURL string)
}
