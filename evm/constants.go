package evm

const (
	// NativeToken is the conventional sentinel address for the chain's
	// native currency in asset lists.
	NativeToken = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

	// Paymaster entry point and ERC-20 function names emitted in derived calls.
	FunctionApprove         = "approve"
	FunctionLockUserDeposit = "lockUserDeposit"
)

var (
	// ERC20ApproveABI for granting the paymaster a token allowance.
	ERC20ApproveABI = []byte(`[
		{
			"inputs": [
				{"name": "spender", "type": "address"},
				{"name": "amount", "type": "uint256"}
			],
			"name": "approve",
			"outputs": [{"name": "", "type": "bool"}],
			"stateMutability": "nonpayable",
			"type": "function"
		}
	]`)

	// ERC20AllowanceABI for checking an existing paymaster allowance.
	ERC20AllowanceABI = []byte(`[
		{
			"inputs": [
				{"name": "owner", "type": "address"},
				{"name": "spender", "type": "address"}
			],
			"name": "allowance",
			"outputs": [{"name": "", "type": "uint256"}],
			"stateMutability": "view",
			"type": "function"
		}
	]`)
)
