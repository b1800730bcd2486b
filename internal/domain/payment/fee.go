package payment

import (
	"math"
)

const (
	// ServiceFeeRate プラットフォーム手数料率（10%固定）
	ServiceFeeRate = 0.10
	// Currency 決済通貨（USD固定）
	Currency = "usd"
	// MaxBaseAmount 1回の決済で受け付ける最大金額（ドル）
	MaxBaseAmount = 1_000_000
)

// FeeComputation 手数料計算結果（計算後は不変）
type FeeComputation struct {
	baseAmount       float64
	feeRate          float64
	totalAmountMinor int64
}

// ComputeFee 希望支払額から手数料込みの請求総額を計算する
//
// 丸めは合算後の総額に対して一度だけ行う。手数料と元本を別々に丸めて
// 合算すると境界値で1セントずれるため、必ずこの順序を守ること。
// 表示用の手数料額は総額と元本の差分として導出する
func ComputeFee(baseAmount float64) (*FeeComputation, error) {
	if math.IsNaN(baseAmount) || math.IsInf(baseAmount, 0) {
		return nil, ErrInvalidAmount
	}
	if baseAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if baseAmount > MaxBaseAmount {
		return nil, ErrInvalidAmount
	}

	totalMinor := int64(math.Round(baseAmount * (1 + ServiceFeeRate) * 100))

	return &FeeComputation{
		baseAmount:       baseAmount,
		feeRate:          ServiceFeeRate,
		totalAmountMinor: totalMinor,
	}, nil
}

// BaseAmount 元本（ドル）を返す
func (f *FeeComputation) BaseAmount() float64 {
	return f.baseAmount
}

// FeeRate 手数料率を返す
func (f *FeeComputation) FeeRate() float64 {
	return f.feeRate
}

// TotalAmountMinor 請求総額（セント）を返す
func (f *FeeComputation) TotalAmountMinor() int64 {
	return f.totalAmountMinor
}

// TotalAmount 請求総額（ドル）を返す
func (f *FeeComputation) TotalAmount() float64 {
	return float64(f.totalAmountMinor) / 100
}

// FeeAmount 表示用の手数料額（ドル）を返す
// 総額から元本を引いた導出値であり、独立して丸めてはならない
func (f *FeeComputation) FeeAmount() float64 {
	return f.TotalAmount() - f.baseAmount
}
