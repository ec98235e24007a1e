// Package config provides layered project/global configuration for CLI applications.
//
// Two property layers are consulted, in order:
//  1. Project properties (.project.properties in the working directory)
//  2. Global properties (the first *.properties file under <home>/bin)
//
// A caller-supplied default is used when neither layer has the key.
//
// # Basic Usage
//
// Load the store once at startup and hand it to the code that needs it:
//
//	store, err := config.Load(config.Options{
//	    WorkDir: ".",
//	    Home:    home,
//	    Vars:    map[string]string{"APP_HOME": home},
//	})
//	dir, ok := store.Get("repository.dir", "${APP_HOME}/repository")
//
// Values pass through variable injection before they are returned, so
// ${NAME} placeholders resolve from Options.Vars and then the environment.
//
// # Project Descriptor
//
// When project.xml exists in the working directory, its leaf elements seed
// project properties that are not already set. Single-segment tags gain a
// "project." prefix, multi-segment tags have their dashes turned into dots:
//
//	<project>
//	    <name>fables</name>          <!-- project.name=fables -->
//	    <build-dir>target</build-dir> <!-- build.dir=target -->
//	</project>
//
// # Mutation
//
// Put and Remove update the project layer and rewrite the whole project file.
// They are only permitted inside a project, that is when the project file
// exists. Otherwise they return a contract error wrapping ErrOutsideProject.
// The global layer is never written back.
package config
