package gate

import "github.com/oisee/qureg/pkg/qreg"

// SwapLeads swaps the first width qubits of the register with the
// width qubits immediately above them, done classically by relabelling
// basis states. If the register's QECStatus hook reports an active
// code, it instead re-expresses each bit swap as the standard
// three-CNOT sequence (CNOT(i,w+i), CNOT(w+i,i), CNOT(i,w+i)), which is
// fault-tolerant because it only ever uses CNOT.
func SwapLeads(reg *qreg.Register, width int) error {
	if enabled, _ := reg.QECStatus(); enabled {
		for i := 0; i < width; i++ {
			if err := CNOT(reg, i, width+i); err != nil {
				return err
			}
			if err := CNOT(reg, width+i, i); err != nil {
				return err
			}
			if err := CNOT(reg, i, width+i); err != nil {
				return err
			}
		}
		return nil
	}

	if reg.ObjCodePut(qreg.OpSwapLeads, float64(width)) {
		return nil
	}

	low := uint64(1)<<uint(width) - 1
	mid := low << uint(width)
	for i := range reg.Labels {
		label := reg.Labels[i]
		left := label & low
		right := label & mid
		rest := label &^ (low | mid)
		reg.Labels[i] = (left << uint(width)) | (right >> uint(width)) | rest
	}
	reg.FireDecohere()
	return nil
}

// SwapLeadsControlled swaps width-bit blocks starting at offsets width
// and 2*width+2, controlled by control, via three controlled-swaps
// built from Toffoli (the fault-tolerant-safe controlled analogue of
// SwapLeads's plain three-CNOT expansion).
func SwapLeadsControlled(reg *qreg.Register, control, width int) error {
	for i := 0; i < width; i++ {
		if err := Toffoli(reg, control, width+i, 2*width+i+2); err != nil {
			return err
		}
		if err := Toffoli(reg, control, 2*width+i+2, width+i); err != nil {
			return err
		}
		if err := Toffoli(reg, control, width+i, 2*width+i+2); err != nil {
			return err
		}
	}
	return nil
}
