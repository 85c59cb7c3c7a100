// Package audit contiene las pruebas de auditoría del RCF. Cada prueba es una función
// pura de (facturas, rango) a un informe: no consulta almacenes, no muta las facturas
// y dos ejecuciones sobre la misma entrada producen el mismo informe.
package audit

import (
	"sort"
	"strconv"
)

// compararIDs orden total sobre identificadores opacos: primero los enteros en orden
// numérico y después el resto (UUID, alfanuméricos) en orden lexicográfico.
func compararIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func ordenarIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool { return compararIDs(ids[i], ids[j]) < 0 })
}
