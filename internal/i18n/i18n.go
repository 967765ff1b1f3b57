// Package i18n translates user-facing strings. The language comes from the
// QSLEEPY_LANG environment variable or, failing that, the system locale.
package i18n

import (
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
)

const langEnv = "QSLEEPY_LANG"

var (
	mu   sync.RWMutex
	lang string
)

var translations = map[string]map[string]string{
	"Sleep": {
		"ru": "Сон",
		"es": "Suspender",
		"pt": "Suspender",
	},
	"Shutdown": {
		"ru": "Выключение",
		"es": "Apagar",
		"pt": "Desligar",
	},
	"Seconds:": {
		"ru": "Секунды:",
		"es": "Segundos:",
		"pt": "Segundos:",
	},
	"Minutes:": {
		"ru": "Минуты:",
		"es": "Minutos:",
		"pt": "Minutos:",
	},
	"Hours:": {
		"ru": "Часы:",
		"es": "Horas:",
		"pt": "Horas:",
	},
	"OK": {
		"ru": "ОК",
	},
	"Cancel": {
		"ru": "Отмена",
		"es": "Cancelar",
		"pt": "Cancelar",
	},
	"Stop": {
		"ru": "Стоп",
		"es": "Parar",
		"pt": "Parar",
	},
	"Time left: %d": {
		"ru": "Осталось: %d",
		"es": "Tiempo restante: %d",
		"pt": "Tempo restante: %d",
	},
	"Select what action to execute (shutdown/sleep)!": {
		"ru": "Выберите действие (выключение/сон)!",
		"es": "¡Seleccione la acción a ejecutar (apagar/suspender)!",
		"pt": "Selecione a ação a executar (desligar/suspender)!",
	},
	"Invalid duration": {
		"ru": "Неверная длительность",
		"es": "Duración no válida",
		"pt": "Duração inválida",
	},
	"Idle": {
		"ru": "Ожидание",
		"es": "Inactivo",
		"pt": "Ocioso",
	},
	"%s in %s": {
		"ru": "%s через %s",
		"es": "%s en %s",
		"pt": "%s em %s",
	},
	"Show": {
		"ru": "Показать",
		"es": "Mostrar",
		"pt": "Mostrar",
	},
	"Stop countdown": {
		"ru": "Остановить отсчёт",
		"es": "Detener cuenta atrás",
		"pt": "Parar contagem",
	},
	"Preferences": {
		"ru": "Настройки",
		"es": "Preferencias",
		"pt": "Preferências",
	},
	"Quit": {
		"ru": "Выход",
		"es": "Salir",
		"pt": "Sair",
	},
	"Save": {
		"ru": "Сохранить",
		"es": "Guardar",
		"pt": "Salvar",
	},
	"QSleepy Settings": {
		"ru": "Настройки QSleepy",
		"es": "Ajustes de QSleepy",
		"pt": "Configurações do QSleepy",
	},
	"Defaults": {
		"ru": "По умолчанию",
		"es": "Valores predeterminados",
		"pt": "Padrões",
	},
	"Warning": {
		"ru": "Предупреждение",
		"es": "Aviso",
		"pt": "Aviso",
	},
	"Play a chime before the action": {
		"ru": "Звуковой сигнал перед действием",
		"es": "Sonar un aviso antes de la acción",
		"pt": "Tocar um aviso antes da ação",
	},
	"Seconds before firing": {
		"ru": "Секунд до срабатывания",
		"es": "Segundos antes de ejecutar",
		"pt": "Segundos antes de executar",
	},
	"Dry run (log instead of acting)": {
		"ru": "Пробный режим (только журнал)",
		"es": "Simulación (solo registrar)",
		"pt": "Simulação (apenas registrar)",
	},
	"tab: next field • ←/→: action • enter: OK • esc: cancel": {
		"ru": "tab: след. поле • ←/→: действие • enter: ОК • esc: отмена",
		"es": "tab: siguiente campo • ←/→: acción • enter: OK • esc: cancelar",
		"pt": "tab: próximo campo • ←/→: ação • enter: OK • esc: cancelar",
	},
	"s: stop": {
		"ru": "s: стоп",
		"es": "s: parar",
		"pt": "s: parar",
	},
}

func init() {
	SetLang(detectLang())
}

func detectLang() string {
	if forced := strings.TrimSpace(os.Getenv(langEnv)); forced != "" {
		logrus.Debugf("%s is set to %q", langEnv, forced)
		return forced
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		logrus.Debug("could not detect user locale, defaulting to english")
		return "en"
	}
	logrus.Debugf("detected user locale %s", userLocales[0])
	return userLocales[0]
}

// SetLang selects the language by locale or language code.
func SetLang(value string) {
	normalized := "en"
	for _, supported := range []string{"ru", "es", "pt"} {
		if strings.HasPrefix(strings.ToLower(value), supported) {
			normalized = supported
			break
		}
	}
	mu.Lock()
	lang = normalized
	mu.Unlock()
}

// Lang returns the active language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key, returning key itself when no translation exists.
func T(key string) string {
	if translated, ok := translations[key][Lang()]; ok {
		return translated
	}
	return key
}
