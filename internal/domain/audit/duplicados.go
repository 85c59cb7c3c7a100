package audit

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
)

// FacturaDuplicada entrada del listado de duplicados potenciales (V.1.4).
type FacturaDuplicada struct {
	ID                     string
	NumeroFactura          string
	ProveedorNIF           string
	FechaFactura           string
	FechaRegistroRCF       *string
	IDsDuplicadosAsociados []string
}

// ClaveDuplicado normaliza la identidad de una factura: NIF sin espacios y en
// mayúsculas, número y fecha de emisión sin espacios. ok=false si falta algún componente.
func ClaveDuplicado(f *entity.Invoice) (entity.ClaveDuplicado, bool) {
	nif := strings.TrimSpace(f.ProveedorNIF)
	num := strings.TrimSpace(f.NumeroFactura)
	fecha := strings.TrimSpace(f.FechaFactura)
	if f.ID == "" || nif == "" || num == "" || fecha == "" {
		return entity.ClaveDuplicado{}, false
	}
	return entity.ClaveDuplicado{NIF: normalizarNIF(nif), Numero: num, Fecha: fecha}, true
}

// normalizarNIF pasa el NIF a mayúsculas con las reglas completas de Unicode.
// Un Caser guarda estado, así que no se comparte entre goroutines.
func normalizarNIF(nif string) string {
	return cases.Upper(language.Und).String(nif)
}

// BuscarDuplicados agrupa las facturas por clave en una sola pasada y devuelve una
// entrada por cada miembro de un grupo con dos o más facturas.
func BuscarDuplicados(facturas []*entity.Invoice) []FacturaDuplicada {
	grupos := make(map[entity.ClaveDuplicado][]*entity.Invoice)
	for _, f := range facturas {
		clave, ok := ClaveDuplicado(f)
		if !ok {
			continue
		}
		grupos[clave] = append(grupos[clave], f)
	}

	type entrada struct {
		clave entity.ClaveDuplicado
		FacturaDuplicada
	}
	var entradas []entrada
	for clave, miembros := range grupos {
		ids := idsUnicos(miembros)
		if len(ids) < 2 {
			continue
		}
		vistos := make(map[string]struct{}, len(miembros))
		for _, f := range miembros {
			if _, ok := vistos[f.ID]; ok {
				continue
			}
			vistos[f.ID] = struct{}{}
			entradas = append(entradas, entrada{clave: clave, FacturaDuplicada: FacturaDuplicada{
				ID:                     f.ID,
				NumeroFactura:          f.NumeroFactura,
				ProveedorNIF:           f.ProveedorNIF,
				FechaFactura:           f.FechaFactura,
				FechaRegistroRCF:       f.FechaRegistroRCF,
				IDsDuplicadosAsociados: ids,
			}})
		}
	}

	// orden por clave normalizada: los miembros de un grupo quedan contiguos
	sort.Slice(entradas, func(i, j int) bool {
		a, b := entradas[i], entradas[j]
		if a.clave.NIF != b.clave.NIF {
			return a.clave.NIF < b.clave.NIF
		}
		if a.clave.Numero != b.clave.Numero {
			return a.clave.Numero < b.clave.Numero
		}
		if a.clave.Fecha != b.clave.Fecha {
			return a.clave.Fecha < b.clave.Fecha
		}
		return compararIDs(a.ID, b.ID) < 0
	})

	var out []FacturaDuplicada
	for _, e := range entradas {
		out = append(out, e.FacturaDuplicada)
	}
	return out
}

// idsUnicos ids distintos del grupo, ordenados. El mismo id repetido en la entrada no
// constituye un duplicado.
func idsUnicos(miembros []*entity.Invoice) []string {
	set := make(map[string]struct{}, len(miembros))
	ids := make([]string, 0, len(miembros))
	for _, f := range miembros {
		if _, ok := set[f.ID]; ok {
			continue
		}
		set[f.ID] = struct{}{}
		ids = append(ids, f.ID)
	}
	ordenarIDs(ids)
	return ids
}
