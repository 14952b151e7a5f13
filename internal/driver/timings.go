package driver

import (
	"rill/internal/diag"
	"rill/internal/observ"
	"rill/internal/source"
)

// AppendTimings добавляет информационную диагностику I000 с отчётом
// таймера. Если лимит Bag уже исчерпан, диагностика всё равно попадает
// в отчёт: Merge поднимает лимит под новый элемент.
func AppendTimings(bag *diag.Bag, timer *observ.Timer, file source.FileID) {
	d := timer.Diagnostic(file)
	if bag.Add(d) {
		return
	}
	extra := diag.NewBag(1)
	extra.Add(d)
	bag.Merge(extra)
}
