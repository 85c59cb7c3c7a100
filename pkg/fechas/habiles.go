package fechas

import "time"

// DiasHabiles cuenta los días de lunes a viernes en el intervalo cerrado [inicio, fin].
// Devuelve ok=false si falta alguna de las fechas. Si inicio es posterior a fin el
// resultado es 0. Las horas se ignoran: solo cuenta la fecha de calendario.
func DiasHabiles(inicio, fin *time.Time) (int, bool) {
	if inicio == nil || fin == nil {
		return 0, false
	}
	desde, hasta := FechaCivil(*inicio), FechaCivil(*fin)
	if desde.After(hasta) {
		return 0, true
	}

	total := int(hasta.Sub(desde).Hours()/24) + 1
	semanas, resto := total/7, total%7
	dias := semanas * 5

	wd := desde.Weekday()
	for i := 0; i < resto; i++ {
		if d := (wd + time.Weekday(i)) % 7; d != time.Saturday && d != time.Sunday {
			dias++
		}
	}
	return dias, true
}
