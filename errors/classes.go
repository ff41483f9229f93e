package errors

var (
	// MjrFactory is the major error classification for the keyed factories.
	MjrFactory Major
	// MnrFactoryService is the 'MjrFactory' minor classification for the factory services.
	MnrFactoryService Minor
	// ClassFactoryNotRegistered is the classification for the services that are not registered
	// within given factory.
	ClassFactoryNotRegistered Class
	// ClassFactoryConstructor is the classification for the failures returned by the service constructors.
	ClassFactoryConstructor Class

	// MjrNamer is the major error classification for the naming conventions.
	MjrNamer Major
	// MnrNamerConvention is the 'MjrNamer' minor classification for the naming conventions.
	MnrNamerConvention Minor
	// ClassNamerUnknownConvention is the classification for the unknown naming convention.
	ClassNamerUnknownConvention Class

	// MjrConfig is the major error classification for the configuration.
	MjrConfig Major
	// MnrConfigRead is the 'MjrConfig' minor classification for reading the configuration.
	MnrConfigRead Minor
	// ClassConfigRead is the classification for the configuration that couldn't be read or unmarshaled.
	ClassConfigRead Class
	// MnrConfigValidation is the 'MjrConfig' minor classification for the config validation.
	MnrConfigValidation Minor
	// ClassConfigValidation is the classification for the configuration with invalid values.
	ClassConfigValidation Class

	// MjrCommon is the common major error classification.
	MjrCommon Major
	// MnrCommonLogger is the 'MjrCommon' minor classification for logger issues.
	MnrCommonLogger Minor
	// ClassLoggerUnknownLevel is the classification for the unknown logger level.
	ClassLoggerUnknownLevel Class
	// ClassLoggerNotImplement is the classification for loggers that doesn't implement some interface.
	ClassLoggerNotImplement Class
)

func init() {
	registerClasses()
}

func registerClasses() {
	MjrFactory = MustRegisterMajor("Factory")
	MnrFactoryService = MjrFactory.MustRegisterMinor("Service")
	ClassFactoryNotRegistered = MnrFactoryService.MustRegisterIndex("Not Registered")
	ClassFactoryConstructor = MnrFactoryService.MustRegisterIndex("Constructor")

	MjrNamer = MustRegisterMajor("Namer")
	MnrNamerConvention = MjrNamer.MustRegisterMinor("Convention")
	ClassNamerUnknownConvention = MnrNamerConvention.MustRegisterIndex("Unknown")

	MjrConfig = MustRegisterMajor("Config")
	MnrConfigRead = MjrConfig.MustRegisterMinor("Read")
	ClassConfigRead = MnrConfigRead.MustRegisterIndex("Failed")
	MnrConfigValidation = MjrConfig.MustRegisterMinor("Validation")
	ClassConfigValidation = MnrConfigValidation.MustRegisterIndex("Invalid Value")

	MjrCommon = MustRegisterMajor("Common")
	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger")
	ClassLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level")
	ClassLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement")
}
