package monitoring

import "strings"

var receiverCleaner = strings.NewReplacer("(", "", ")", "", "*", "")

// getSegmentName shortens a runtime function name to pkg.Receiver.Method,
// "github.com/x/internal/services.(*costume).Get" becomes "services.costume.Get".
func getSegmentName(fullFuncName string) string {
	name := fullFuncName[strings.LastIndex(fullFuncName, "/")+1:]

	pkg, symbol, ok := strings.Cut(name, ".")
	if !ok || pkg == "" || symbol == "" {
		return fullFuncName
	}

	return pkg + "." + receiverCleaner.Replace(symbol)
}
