package config

// System describes one emulated console with a browsable ROM directory.
type System struct {
	Name          string `mapstructure:"name" json:"name" jsonschema:"description=Display name of the system,example=NES Emulator"`
	ID            string `mapstructure:"id" json:"id" jsonschema:"description=Stable identifier used in menus and history,example=nes" validate:"required"`
	RomDir        string `mapstructure:"romDir" json:"romDir" jsonschema:"description=Directory scanned for ROM files" validate:"required"`
	LaunchCommand string `mapstructure:"launchCommand" json:"launchCommand" jsonschema:"description=Shell command template; %s is replaced with the quoted ROM path" validate:"required,contains=%s"`
}

// Commands holds the shell command lines the menu invokes. They are plain
// strings run through sh -c, matching the init-script conventions on the
// device.
type Commands struct {
	ConsoleStart string `mapstructure:"consoleStart" json:"consoleStart" jsonschema:"description=Starts the framebuffer terminal,default=/etc/init.d/S99fbterm start_with_input"`
	ConsoleStop  string `mapstructure:"consoleStop" json:"consoleStop" jsonschema:"description=Stops the framebuffer terminal,default=/etc/init.d/S99fbterm stop"`
	GameStart    string `mapstructure:"gameStart" json:"gameStart" jsonschema:"description=Hands the display to the game shell,default=/root/term_start_all.sh < /dev/null"`
	Reboot       string `mapstructure:"reboot" json:"reboot" jsonschema:"description=Reboots the device,default=reboot"`
	SetClock     string `mapstructure:"setClock" json:"setClock" jsonschema:"description=Sets the system clock; %02d placeholders receive hour and minute,default=date -s \"%02d:%02d:00\""`
	SaveHWClock  string `mapstructure:"saveHwClock" json:"saveHwClock" jsonschema:"description=Persists the clock to the hardware RTC,default=hwclock -w"`
	SetTimezone  string `mapstructure:"setTimezone" json:"setTimezone" jsonschema:"description=Sets the timezone; %s receives the zone name,default=ln -sf /usr/share/zoneinfo/%s /etc/localtime"`
	OTAStart     string `mapstructure:"otaStart" json:"otaStart" jsonschema:"description=Starts the OTA upload server,default=toggle_httpd.sh restart"`
	OTAStop      string `mapstructure:"otaStop" json:"otaStop" jsonschema:"description=Stops the OTA upload server,default=toggle_httpd.sh stop"`
}

// Log configures the slog backend.
type Log struct {
	LogLevel string `mapstructure:"logLevel" json:"logLevel" jsonschema:"description=Logging level,enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=INFO"`
	LogFile  string `mapstructure:"logFile" json:"logFile" jsonschema:"description=Log file path; empty logs to stderr"`
}

// KeyMap maps logical menu actions to key names understood by the terminal.
type KeyMap struct {
	Up     []string `mapstructure:"up" json:"up" jsonschema:"description=Move selection up,default=up,default=w"`
	Down   []string `mapstructure:"down" json:"down" jsonschema:"description=Move selection down,default=down,default=s"`
	Left   []string `mapstructure:"left" json:"left" jsonschema:"description=Move to previous control,default=left,default=a"`
	Right  []string `mapstructure:"right" json:"right" jsonschema:"description=Move to next control,default=right,default=d"`
	Select []string `mapstructure:"select" json:"select" jsonschema:"description=Activate the focused entry,default=enter,default=space"`
	Back   []string `mapstructure:"back" json:"back" jsonschema:"description=Close the current screen,default=esc,default=backspace"`
	Quit   []string `mapstructure:"quit" json:"quit" jsonschema:"description=Exit the menu shell,default=ctrl+c"`
	Help   []string `mapstructure:"help" json:"help" jsonschema:"description=Toggle the key hint footer,default=?"`
}

// ConfigSchema is the merged runtime configuration.
type ConfigSchema struct {
	DeviceName  string   `mapstructure:"deviceName" json:"deviceName" jsonschema:"description=Device name shown on the About screen,default=Luckfox Pico"`
	PrefsFile   string   `mapstructure:"prefsFile" json:"prefsFile" jsonschema:"description=Path of the persisted preference file,default=/etc/menu_prefs.conf" validate:"required"`
	DBPath      string   `mapstructure:"dbPath" json:"dbPath" jsonschema:"description=Path of the launch history database,default=/etc/picomenu_history.db" validate:"required"`
	InfoFile    string   `mapstructure:"infoFile" json:"infoFile" jsonschema:"description=Firmware package info file shown on the About screen,default=/oem/pkpy/info"`
	MeminfoFile string   `mapstructure:"meminfoFile" json:"meminfoFile" jsonschema:"description=Kernel memory info file,default=/proc/meminfo"`
	RecentLimit int      `mapstructure:"recentLimit" json:"recentLimit" jsonschema:"description=Number of entries on the Recently Played screen,default=10" validate:"min=1"`
	Timezones   []string `mapstructure:"timezones" json:"timezones" jsonschema:"description=Timezones offered on the timezone screen"`
	Systems     []System `mapstructure:"systems" json:"systems" jsonschema:"description=Emulated systems with ROM browsers" validate:"dive"`
	Commands    Commands `mapstructure:"commands" json:"commands"`
	Log         Log      `mapstructure:"log" json:"log"`
	Keys        KeyMap   `mapstructure:"keys" json:"keys"`
}
