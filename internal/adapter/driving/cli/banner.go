package cli

import (
	"fmt"

	"github.com/diillson/voyage-revenue-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   __     __                                 ____                                     
   \ \   / /__  _   _  __ _  __ _  ___      |  _ \ _____   _____ _ __  _   _  ___     
    \ \ / / _ \| | | |/ _' |/ _' |/ _ \     | |_) / _ \ \ / / _ \ '_ \| | | |/ _ \    
     \ V / (_) | |_| | (_| | (_| |  __/     |  _ <  __/\ V /  __/ | | | |_| |  __/    
      \_/ \___/ \__, |\__,_|\__, |\___|     |_| \_\___| \_/ \___|_| |_|\__,_|\___|    
                |___/       |___/                                                     
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(blue(fmt.Sprintf("Voyage Revenue Recognition CLI (v%s)", formattedVersion)))
}
